package metaf

import (
	"regexp"

	"github.com/aerowx/metaf/temperature"
)

// MinMaxTemperatureGroup is the 6-hourly remark maximum ("1sTTT") and
// minimum ("2sTTT") temperature, combined into one group when both appear
// adjacently, or the single 24-hourly combined form ("4snTxTxTxsnTnTnTn",
// maximum first, then minimum).
type MinMaxTemperatureGroup struct {
	base
	Max      *temperature.Temperature
	Min      *temperature.Temperature
	Period24h bool
}

var sixHourMaxRx = regexp.MustCompile(`^1([01]\d{3})$`)
var sixHourMinRx = regexp.MustCompile(`^2([01]\d{3})$`)
var dayMinMaxRx = regexp.MustCompile(`^4([01]\d{3})([01]\d{3})$`)

func parseMinMaxTemperatureGroup(token string, part ReportPart, meta *ReportMetadata) (Group, bool) {
	if m := dayMinMaxRx.FindStringSubmatch(token); m != nil {
		max, ok := temperature.FromPrecise(m[1])
		if !ok {
			return nil, false
		}
		min, ok := temperature.FromPrecise(m[2])
		if !ok {
			return nil, false
		}
		return &MinMaxTemperatureGroup{base: base{raw: token}, Max: &max, Min: &min, Period24h: true}, true
	}
	if m := sixHourMaxRx.FindStringSubmatch(token); m != nil {
		t, ok := temperature.FromPrecise(m[1])
		if !ok {
			return nil, false
		}
		return &MinMaxTemperatureGroup{base: base{raw: token}, Max: &t}, true
	}
	if m := sixHourMinRx.FindStringSubmatch(token); m != nil {
		t, ok := temperature.FromPrecise(m[1])
		if !ok {
			return nil, false
		}
		return &MinMaxTemperatureGroup{base: base{raw: token}, Min: &t}, true
	}
	return nil, false
}

func (m *MinMaxTemperatureGroup) Class() SyntaxClass { return ClassOther }

func (m *MinMaxTemperatureGroup) Combine(next Group) (CombineResult, Group) {
	if m.Period24h {
		return NotCombined, nil
	}
	n, ok := next.(*MinMaxTemperatureGroup)
	if !ok || n.Period24h {
		return NotCombined, nil
	}
	if m.Max != nil && m.Min == nil && n.Min != nil && n.Max == nil {
		return Combined, &MinMaxTemperatureGroup{base: base{raw: m.raw + " " + n.raw}, Max: m.Max, Min: n.Min}
	}
	if m.Min != nil && m.Max == nil && n.Max != nil && n.Min == nil {
		return Combined, &MinMaxTemperatureGroup{base: base{raw: m.raw + " " + n.raw}, Max: n.Max, Min: m.Min}
	}
	return NotCombined, nil
}
