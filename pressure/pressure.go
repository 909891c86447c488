// Package pressure decodes altimeter-setting and remark pressure values:
// QNH, QFE, SLP, and pressure tendency.
package pressure

import (
	"regexp"
	"strconv"

	"github.com/aerowx/metaf/units"
	"k8s.io/utils/ptr"
)

// Unit is the wire unit a pressure was reported in.
type Unit int

const (
	HPa Unit = iota
	InHg
	MmHg
)

// Pressure is an optional value in a known unit.
type Pressure struct {
	Value *float64
	Unit  Unit
}

var aRx = regexp.MustCompile(`^A(\d{4})$`)
var qRx = regexp.MustCompile(`^Q(\d{4})$`)

// From decodes "Qdddd" (hPa) or "Adddd" (inHg hundredths).
func From(s string) (Pressure, bool) {
	if m := qRx.FindStringSubmatch(s); m != nil {
		v, err := strconv.Atoi(m[1])
		if err != nil {
			return Pressure{}, false
		}
		f := float64(v)
		return Pressure{Value: ptr.To(f), Unit: HPa}, true
	}
	if m := aRx.FindStringSubmatch(s); m != nil {
		v, err := strconv.Atoi(m[1])
		if err != nil {
			return Pressure{}, false
		}
		f := float64(v) / 100
		return Pressure{Value: ptr.To(f), Unit: InHg}, true
	}
	return Pressure{}, false
}

var forecastRx = regexp.MustCompile(`^QNH(\d{4})INS$`)

// FromForecast decodes the TAF "QNHddddINS" form (inHg hundredths).
func FromForecast(s string) (Pressure, bool) {
	m := forecastRx.FindStringSubmatch(s)
	if m == nil {
		return Pressure{}, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return Pressure{}, false
	}
	f := float64(v) / 100
	return Pressure{Value: ptr.To(f), Unit: InHg}, true
}

var slpRx = regexp.MustCompile(`^SLP(\d{3})$`)

// FromSLP decodes the remark "SLPxxx" sea-level-pressure form: 900+x/10 for
// x>=500, else 1000+x/10.
func FromSLP(s string) (Pressure, bool) {
	m := slpRx.FindStringSubmatch(s)
	if m == nil {
		return Pressure{}, false
	}
	x, err := strconv.Atoi(m[1])
	if err != nil {
		return Pressure{}, false
	}
	var f float64
	if x >= 500 {
		f = 900 + float64(x)/10
	} else {
		f = 1000 + float64(x)/10
	}
	return Pressure{Value: ptr.To(f), Unit: HPa}, true
}

var qfeRx = regexp.MustCompile(`^QFE(\d{2,3})(?:/(\d{3,4}))?$`)

// FromQFE decodes "QFExxx[/hhhh]": station-level pressure in mmHg, with an
// optional hPa restatement after the slash.
func FromQFE(s string) (mmHg Pressure, hPa Pressure, ok bool) {
	m := qfeRx.FindStringSubmatch(s)
	if m == nil {
		return Pressure{}, Pressure{}, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return Pressure{}, Pressure{}, false
	}
	f := float64(v)
	mmHg = Pressure{Value: ptr.To(f), Unit: MmHg}
	if m[2] != "" {
		h, err := strconv.Atoi(m[2])
		if err == nil {
			hf := float64(h)
			hPa = Pressure{Value: &hf, Unit: HPa}
		}
	}
	return mmHg, hPa, true
}

var tendencyRx = regexp.MustCompile(`^[0-8](\d{3})$`)

// FromTendency decodes a 3-hourly pressure-tendency remark group's trailing
// three digits as tenths of hPa. The leading tendency-type digit (0..8) is
// returned separately by callers that already split the 4-digit token.
func FromTendency(digits string) (float64, bool) {
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return float64(v) / 10, true
}

// Valid reports whether a reported value is physically positive. The
// original defines no isValid for Pressure; this is a defensive check for
// values assembled directly rather than through the From* decoders.
func (p Pressure) Valid() bool {
	return p.Value == nil || *p.Value > 0
}

// InHPa converts to hectopascals.
func (p Pressure) InHPa() (float64, bool) {
	if p.Value == nil {
		return 0, false
	}
	switch p.Unit {
	case HPa:
		return *p.Value, true
	case InHg:
		return units.HPaFromInHg(*p.Value), true
	case MmHg:
		return units.HPaFromInHg(*p.Value / units.InHgToMmHg), true
	}
	return 0, false
}
