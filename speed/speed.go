// Package speed decodes wind/gust speed values and their unit suffix.
package speed

import (
	"strconv"

	"github.com/aerowx/metaf/units"
	"k8s.io/utils/ptr"
)

// Unit is the wire unit suffix a speed was reported in.
type Unit string

const (
	Knots Unit = "KT"
	Mps   Unit = "MPS"
	Kmh   Unit = "KMH"
	Mph   Unit = "MPH"
)

// Speed is an optional magnitude in a known unit, with an optional
// comparison modifier ("<" or ">", e.g. "P49KT" style "more than" encodings
// some stations use for saturated anemometers).
type Speed struct {
	Value    *int
	Unit     Unit
	Modifier string
}

// UnitFrom maps a wire suffix to a Unit.
func UnitFrom(s string) (Unit, bool) {
	switch Unit(s) {
	case Knots, Mps, Kmh, Mph:
		return Unit(s), true
	}
	return "", false
}

// From decodes an unsigned integer magnitude in the given unit. An empty
// string means "not reported" (Value stays nil).
func From(s string, unit Unit) (Speed, bool) {
	if s == "" {
		return Speed{Unit: unit}, true
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return Speed{}, false
	}
	return Speed{Value: ptr.To(v), Unit: unit}, true
}

// Valid reports whether a reported magnitude is non-negative. The original
// defines no isValid for Speed (From already rejects negative magnitudes at
// parse time); this is a defensive check for values assembled directly.
func (s Speed) Valid() bool {
	return s.Value == nil || *s.Value >= 0
}

// InUnit converts the speed to the requested unit, centralizing on knots as
// the pivot the way package units does.
func (s Speed) InUnit(to Unit) (Speed, bool) {
	if s.Value == nil {
		return Speed{Unit: to}, true
	}
	kt := toKnots(float64(*s.Value), s.Unit)
	var v float64
	switch to {
	case Knots:
		v = kt
	case Mps:
		v = units.MpsFromKt(kt)
	case Kmh:
		v = units.KmhFromKt(kt)
	case Mph:
		v = units.MphFromKt(kt)
	default:
		return Speed{}, false
	}
	rounded := int(v + 0.5)
	return Speed{Value: ptr.To(rounded), Unit: to, Modifier: s.Modifier}, true
}

func toKnots(v float64, from Unit) float64 {
	switch from {
	case Knots:
		return v
	case Mps:
		return units.KtFromMps(v)
	case Kmh:
		return units.KtFromKmh(v)
	case Mph:
		return units.KtFromMph(v)
	}
	return v
}
