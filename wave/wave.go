// Package wave decodes sea-surface state/wave-height groups.
package wave

import (
	"regexp"
	"strconv"

	"github.com/aerowx/metaf/units"
	"k8s.io/utils/ptr"
)

// WaveHeight is either a sea-state ordinal code (0-9) or an explicit wave
// height in decimeters.
type WaveHeight struct {
	SeaState   *int
	Decimeters *int
}

var stateRx = regexp.MustCompile(`^S(\d)$`)
var heightRx = regexp.MustCompile(`^H(\d{1,3})$`)

// From decodes "Sd" (sea-state ordinal) or "Hddd" (wave height in
// decimeters).
func From(s string) (WaveHeight, bool) {
	if m := stateRx.FindStringSubmatch(s); m != nil {
		v, err := strconv.Atoi(m[1])
		if err != nil {
			return WaveHeight{}, false
		}
		return WaveHeight{SeaState: ptr.To(v)}, true
	}
	if m := heightRx.FindStringSubmatch(s); m != nil {
		v, err := strconv.Atoi(m[1])
		if err != nil {
			return WaveHeight{}, false
		}
		return WaveHeight{Decimeters: ptr.To(v)}, true
	}
	return WaveHeight{}, false
}

// Valid reports whether a reported sea-state ordinal is in its 0-9 range
// and a reported height is non-negative. The original defines no isValid
// for WaveHeight; this is a defensive check for values assembled directly
// rather than through From.
func (w WaveHeight) Valid() bool {
	if w.SeaState != nil && (*w.SeaState < 0 || *w.SeaState > 9) {
		return false
	}
	if w.Decimeters != nil && *w.Decimeters < 0 {
		return false
	}
	return true
}

// Meters returns the explicit wave height in meters.
func (w WaveHeight) Meters() (float64, bool) {
	if w.Decimeters == nil {
		return 0, false
	}
	return float64(*w.Decimeters) / 10, true
}

// Feet returns the explicit wave height in feet.
func (w WaveHeight) Feet() (float64, bool) {
	m, ok := w.Meters()
	if !ok {
		return 0, false
	}
	return m * units.MToFt, true
}
