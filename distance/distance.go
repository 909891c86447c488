// Package distance decodes the distance/height/layer values used by
// visibility, cloud base, runway visual range, and layer forecast groups.
package distance

import (
	"strconv"
	"strings"

	"k8s.io/utils/ptr"
)

// Unit is the wire unit a distance is expressed in.
type Unit int

const (
	Meters Unit = iota
	StatuteMiles
	Feet
)

// Distance is an optional integer part plus an optional fraction
// (numerator/denominator), a unit, and an optional "<"/">" modifier. CAVOK
// visibility is represented as the synthetic value "at least 10000 m (or
// 6 SM)" via the CAVOK() constructor rather than a sentinel integer.
type Distance struct {
	Integer     *int
	Numerator   *int
	Denominator *int
	Unit        Unit
	Modifier    string
}

// FromMeters decodes a four-digit meter visibility, with an optional
// trailing cardinal suffix indicating directional visibility (the suffix
// itself is not part of the Distance value; callers extract it separately).
func FromMeters(s string) (Distance, bool) {
	if len(s) != 4 {
		return Distance{}, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return Distance{}, false
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Distance{}, false
	}
	if v == 9999 {
		return Distance{Integer: ptr.To(10000), Unit: Meters, Modifier: ">"}, true
	}
	return Distance{Integer: ptr.To(v), Unit: Meters}, true
}

// FromMiles decodes a statute-mile visibility: "N", "N/N", or "N N/N", with
// an optional leading "P"/"M" modifier.
func FromMiles(s string) (Distance, bool) {
	modifier := ""
	if strings.HasPrefix(s, "P") {
		modifier = ">"
		s = s[1:]
	} else if strings.HasPrefix(s, "M") {
		modifier = "<"
		s = s[1:]
	}
	d := Distance{Unit: StatuteMiles, Modifier: modifier}
	parts := strings.SplitN(s, " ", 2)
	intPart := ""
	fracPart := parts[0]
	if len(parts) == 2 {
		intPart = parts[0]
		fracPart = parts[1]
	}
	if strings.Contains(fracPart, "/") {
		nd := strings.SplitN(fracPart, "/", 2)
		num, err1 := strconv.Atoi(nd[0])
		den, err2 := strconv.Atoi(nd[1])
		if err1 != nil || err2 != nil || den == 0 {
			return Distance{}, false
		}
		d.Numerator = ptr.To(num)
		d.Denominator = ptr.To(den)
	} else if fracPart != "" {
		v, err := strconv.Atoi(fracPart)
		if err != nil {
			return Distance{}, false
		}
		d.Integer = ptr.To(v)
		return d, true
	} else {
		return Distance{}, false
	}
	if intPart != "" {
		v, err := strconv.Atoi(intPart)
		if err != nil {
			return Distance{}, false
		}
		d.Integer = ptr.To(v)
	}
	return d, true
}

// Valid mirrors the original's Distance::isValid: a reported fraction's
// numerator and denominator must both be nonzero.
func (d Distance) Valid() bool {
	if d.Denominator != nil && *d.Denominator == 0 {
		return false
	}
	if d.Numerator != nil && *d.Numerator == 0 {
		return false
	}
	return true
}

// FromHeight decodes a cloud-base/vertical-visibility height in hundreds of
// feet (a bare three-digit group).
func FromHeight(s string) (Distance, bool) {
	if len(s) != 3 {
		return Distance{}, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Distance{}, false
	}
	hundreds := v * 100
	return Distance{Integer: ptr.To(hundreds), Unit: Feet}, true
}

// FromRvr decodes a runway-visual-range value: an optional P/M modifier
// followed by a 4-digit value in meters or feet depending on the station's
// convention; the unit must be supplied by the caller since RVR groups
// don't repeat it per-token in most regions.
func FromRvr(s string, unit Unit) (Distance, bool) {
	modifier := ""
	if strings.HasPrefix(s, "P") {
		modifier = ">"
		s = s[1:]
	} else if strings.HasPrefix(s, "M") {
		modifier = "<"
		s = s[1:]
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Distance{}, false
	}
	return Distance{Integer: ptr.To(v), Unit: unit, Modifier: modifier}, true
}

// LayerForecast is a cloud/icing/turbulence layer: base height (hundreds of
// feet) plus a depth (thousands of feet).
type LayerForecast struct {
	Base  int
	Depth int
}

// FromLayer decodes a 4-digit layer-forecast token as base+depth.
func FromLayer(s string) (LayerForecast, bool) {
	if len(s) != 4 {
		return LayerForecast{}, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return LayerForecast{}, false
	}
	return LayerForecast{Base: (v / 10) * 100, Depth: (v % 10) * 1000}, true
}

// CAVOK is the synthetic "at least 10000 m / 6 SM" visibility value the
// CAVOK keyword implies.
func CAVOK(unit Unit) Distance {
	if unit == StatuteMiles {
		return Distance{Integer: ptr.To(6), Unit: StatuteMiles, Modifier: ">"}
	}
	return Distance{Integer: ptr.To(10000), Unit: Meters, Modifier: ">"}
}
