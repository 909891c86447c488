package metaf

import "github.com/aerowx/metaf/pressure"

// PressureGroup is the altimeter setting: "Qdddd" (hPa), "Adddd" (inHg), or
// the TAF forecast "QNHddddINS" form.
type PressureGroup struct {
	base
	Pressure pressure.Pressure
	Forecast bool
}

func parsePressureGroup(token string, part ReportPart, meta *ReportMetadata) (Group, bool) {
	if p, ok := pressure.FromForecast(token); ok {
		return &PressureGroup{base: base{raw: token}, Pressure: p, Forecast: true}, true
	}
	if p, ok := pressure.From(token); ok {
		return &PressureGroup{base: base{raw: token}, Pressure: p}, true
	}
	return nil, false
}

func (p *PressureGroup) Class() SyntaxClass { return ClassOther }
