// Package temperature decodes air temperature / dew point values, including
// the tenth-of-degree "precise" remark form, and derives humidity/heat-index/
// wind-chill from decoded values.
package temperature

import (
	"math"
	"regexp"
	"strconv"

	"github.com/aerowx/metaf/units"
	"k8s.io/utils/ptr"
)

// Temperature is an optional whole-degree-Celsius value. Precise indicates
// the value came from a tenth-of-degree remark group (T00560028-style) and
// Tenths carries the whole signed value in tenths of a degree in that case
// (e.g. 56 for +5.6C).
type Temperature struct {
	Value   *int
	Tenths  int
	Precise bool
}

var wholeRx = regexp.MustCompile(`^(M)?(\d{2})$`)

// From decodes the whole-degree body form: two digits with an optional "M"
// (minus) prefix ("25", "M05").
func From(s string) (Temperature, bool) {
	m := wholeRx.FindStringSubmatch(s)
	if m == nil {
		return Temperature{}, false
	}
	v, err := strconv.Atoi(m[2])
	if err != nil {
		return Temperature{}, false
	}
	if m[1] == "M" {
		v = -v
	}
	return Temperature{Value: ptr.To(v)}, true
}

var preciseRx = regexp.MustCompile(`^([01])(\d{3})$`)

// FromPrecise decodes the 4-digit sign+tenths form used inside remark
// T-groups: a leading 0 means positive, 1 means negative, followed by three
// digits of tenths of a degree (e.g. "0056" -> +5.6C).
func FromPrecise(s string) (Temperature, bool) {
	m := preciseRx.FindStringSubmatch(s)
	if m == nil {
		return Temperature{}, false
	}
	tenths, err := strconv.Atoi(m[2])
	if err != nil {
		return Temperature{}, false
	}
	whole := tenths / 10
	if m[1] == "1" {
		whole = -whole
		tenths = -tenths
	}
	return Temperature{Value: ptr.To(whole), Tenths: tenths, Precise: true}, true
}

// ToFahrenheit converts a decoded whole-degree value.
func (t Temperature) ToFahrenheit() (float64, bool) {
	if t.Value == nil {
		return 0, false
	}
	return units.CToF(float64(*t.Value)), true
}

// RelativeHumidity derives %RH from temperature and dew point (Celsius)
// using the Magnus formula.
func RelativeHumidity(tempC, dewC int) float64 {
	magnus := func(t float64) float64 {
		const a, b = 17.625, 243.04
		return math.Exp((a * t) / (b + t))
	}
	return 100 * magnus(float64(dewC)) / magnus(float64(tempC))
}

// HeatIndex derives the NWS heat-index polynomial, in Fahrenheit, given
// Fahrenheit air temperature and %RH. Only meaningful above roughly 80F;
// callers are expected to gate on that themselves.
func HeatIndex(tempF, rh float64) float64 {
	t, r := tempF, rh
	hi := -42.379 + 2.04901523*t + 10.14333127*r -
		0.22475541*t*r - 0.00683783*t*t - 0.05481717*r*r +
		0.00122874*t*t*r + 0.00085282*t*r*r - 0.00000199*t*t*r*r
	return hi
}

// WindChill derives the NWS wind-chill polynomial, in Fahrenheit, given
// Fahrenheit air temperature and wind speed in mph.
func WindChill(tempF, windMph float64) float64 {
	v016 := math.Pow(windMph, 0.16)
	return 35.74 + 0.6215*tempF - 35.75*v016 + 0.4275*tempF*v016
}
