package metaf

import (
	"regexp"

	"github.com/aerowx/metaf/temperature"
	"github.com/aerowx/metaf/wave"
)

// SeaSurfaceGroup is the remark "W<temp>/<wave>" sea-surface-temperature
// plus sea-state/wave-height group.
type SeaSurfaceGroup struct {
	base
	Temperature temperature.Temperature
	Wave        wave.WaveHeight
}

var seaSurfaceRx = regexp.MustCompile(`^W(M?\d{2})/(S\d|H\d{1,3})$`)

func parseSeaSurfaceGroup(token string, part ReportPart, meta *ReportMetadata) (Group, bool) {
	m := seaSurfaceRx.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	t, ok := temperature.From(m[1])
	if !ok {
		return nil, false
	}
	w, ok := wave.From(m[2])
	if !ok {
		return nil, false
	}
	return &SeaSurfaceGroup{base: base{raw: token}, Temperature: t, Wave: w}, true
}

func (s *SeaSurfaceGroup) Class() SyntaxClass { return ClassOther }
