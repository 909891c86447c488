// Package friction decodes the runway surface-friction coefficient or
// braking-action bucket reported in runway state groups.
package friction

import (
	"strconv"

	"k8s.io/utils/ptr"
)

// Status distinguishes a reported value from "not reported"/"unreliable".
type Status int

const (
	Reported Status = iota
	NotReported
	Unreliable
)

// Bucket is one of the five braking-action descriptors used by reserved
// codes 91-95.
type Bucket string

const (
	Poor       Bucket = "poor"
	MediumPoor Bucket = "medium_poor"
	Medium     Bucket = "medium"
	MediumGood Bucket = "medium_good"
	Good       Bucket = "good"
)

var buckets = map[int]Bucket{
	91: Poor, 92: MediumPoor, 93: Medium, 94: MediumGood, 95: Good,
}

// SurfaceFriction is either a numeric coefficient (0.00-0.90 in 0.01 steps)
// or a braking-action bucket, plus a status.
type SurfaceFriction struct {
	Coefficient *float64
	Bucket      Bucket
	Status      Status
}

// Valid reports whether a reported coefficient falls in the 0.00-0.90
// range the 2-digit wire code can express. The original defines no isValid
// for SurfaceFriction; this is a defensive check for values assembled
// directly rather than through From.
func (f SurfaceFriction) Valid() bool {
	if f.Coefficient == nil {
		return true
	}
	return *f.Coefficient >= 0 && *f.Coefficient <= 0.90
}

// From decodes the 2-digit friction code.
func From(s string) (SurfaceFriction, bool) {
	if len(s) != 2 {
		return SurfaceFriction{}, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return SurfaceFriction{}, false
	}
	switch {
	case v == 99:
		return SurfaceFriction{Status: Unreliable}, true
	case v == 96, v == 97, v == 98:
		return SurfaceFriction{}, false
	case v >= 91 && v <= 95:
		return SurfaceFriction{Bucket: buckets[v], Status: Reported}, true
	case v >= 0 && v <= 90:
		c := float64(v) / 100
		return SurfaceFriction{Coefficient: ptr.To(c), Status: Reported}, true
	}
	return SurfaceFriction{}, false
}
