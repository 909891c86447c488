package metaf

import (
	"regexp"

	"github.com/aerowx/metaf/mtime"
	"github.com/aerowx/metaf/temperature"
)

// TemperatureGroup is the METAR body air-temperature/dew-point pair
// ("18/12", "M02/M05", "18/" with dew point omitted).
type TemperatureGroup struct {
	base
	Temperature temperature.Temperature
	DewPoint    temperature.Temperature
	DewPointReported bool
}

var temperaturePairRx = regexp.MustCompile(`^(M?\d{2})/(M?\d{2})?$`)

func parseTemperatureGroup(token string, part ReportPart, meta *ReportMetadata) (Group, bool) {
	m := temperaturePairRx.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	t, ok := temperature.From(m[1])
	if !ok {
		return nil, false
	}
	g := &TemperatureGroup{base: base{raw: token}, Temperature: t}
	if m[2] != "" {
		d, ok := temperature.From(m[2])
		if !ok {
			return nil, false
		}
		g.DewPoint = d
		g.DewPointReported = true
	}
	return g, true
}

func (t *TemperatureGroup) Class() SyntaxClass { return ClassOther }

// Valid mirrors the original's TemperatureGroup::isValid: when both values
// are reported, dew point must not exceed air temperature.
func (t *TemperatureGroup) Valid() bool {
	if !t.DewPointReported || t.Temperature.Value == nil || t.DewPoint.Value == nil {
		return true
	}
	return *t.Temperature.Value >= *t.DewPoint.Value
}

// TemperatureForecastGroup is the TAF forecast maximum ("TXdd/DDHHZ") or
// minimum ("TNdd/DDHHZ") temperature group; the temperature may carry an
// "M" (minus) prefix.
type TemperatureForecastGroup struct {
	base
	Max         bool
	Temperature temperature.Temperature
	At          MetafTime
}

var tempForecastRx = regexp.MustCompile(`^(TX|TN)(M?\d{2})/(\d{2})(\d{2})Z$`)

func parseTemperatureForecastGroup(token string, part ReportPart, meta *ReportMetadata) (Group, bool) {
	m := tempForecastRx.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	t, ok := temperature.From(m[2])
	if !ok {
		return nil, false
	}
	at, ok := mtime.FromDDHH(m[3] + m[4])
	if !ok {
		return nil, false
	}
	return &TemperatureForecastGroup{
		base:        base{raw: token},
		Max:         m[1] == "TX",
		Temperature: t,
		At:          at,
	}, true
}

func (t *TemperatureForecastGroup) Class() SyntaxClass { return ClassOther }
