// Package precipitation decodes rainfall, runway-deposit, and remark
// precipitation amounts.
package precipitation

import (
	"strconv"

	"k8s.io/utils/ptr"
)

// Status distinguishes reported, not-reported, and the runway-deposit
// "runway not operational" sentinel.
type Status int

const (
	Reported Status = iota
	NotReported
	RunwayNotOperational
)

// Unit is the wire unit a precipitation amount was reported in.
type Unit int

const (
	Millimeters Unit = iota
	Inches
)

// Precipitation is an optional amount plus status.
type Precipitation struct {
	Value  *float64
	Unit   Unit
	Status Status
}

// FromRainfall decodes a "NN.N" millimeter rainfall amount (used by
// SYNOP-style rainfall remark groups).
func FromRainfall(s string) (Precipitation, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Precipitation{}, false
	}
	return Precipitation{Value: ptr.To(v), Unit: Millimeters}, true
}

// FromRunwayDeposits decodes a 2-digit runway-deposit depth code; 00-90 is
// depth in mm (with a scale table callers may apply), 91-98 reserved, and 99
// means "runway not operational".
func FromRunwayDeposits(s string) (Precipitation, bool) {
	if len(s) != 2 {
		return Precipitation{}, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Precipitation{}, false
	}
	if v == 99 {
		return Precipitation{Status: RunwayNotOperational}, true
	}
	if v >= 91 && v <= 98 {
		return Precipitation{}, false
	}
	f := float64(v)
	return Precipitation{Value: ptr.To(f), Unit: Millimeters, Status: Reported}, true
}

// FromRemark decodes a fixed-width digit group scaled by factor (inches),
// e.g. hourly precipitation "P" groups (factor 0.01) or snow depth "4/"
// groups (factor 1). If allowNotReported and the digits are all '/', the
// value is NotReported rather than a decode failure.
func FromRemark(s string, factor float64, allowNotReported bool) (Precipitation, bool) {
	if allowNotReported && isSlashes(s) {
		return Precipitation{Status: NotReported}, true
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Precipitation{}, false
	}
	f := float64(v) * factor
	return Precipitation{Value: ptr.To(f), Unit: Inches, Status: Reported}, true
}

// Valid reports whether a reported amount is non-negative. The original
// defines no isValid for Precipitation; this is a defensive check for
// values assembled directly rather than through the From* decoders.
func (p Precipitation) Valid() bool {
	return p.Value == nil || *p.Value >= 0
}

func isSlashes(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c != '/' {
			return false
		}
	}
	return true
}
