package metaf

import (
	"regexp"

	"github.com/aerowx/metaf/distance"
	"github.com/aerowx/metaf/runway"
)

// RunwayVisualRangeGroup is "R<runway>/<value>[V<value>][FT][U|D|N]": a
// runway visual range, optionally a variable range, optionally in feet
// (meters otherwise), with an optional trend.
type RunwayVisualRangeGroup struct {
	base
	Runway   runway.Runway
	Visual   distance.Distance
	Variable *distance.Distance
	Trend    string
}

var rvrRx = regexp.MustCompile(`^R(\d{2}[LCR]?)/([PM]?\d{3,4})(?:V([PM]?\d{3,4}))?(FT)?([UDN])?$`)

func parseRunwayVisualRangeGroup(token string, part ReportPart, meta *ReportMetadata) (Group, bool) {
	m := rvrRx.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	rw, ok := runway.From("R" + m[1])
	if !ok {
		return nil, false
	}
	unit := distance.Meters
	if m[4] == "FT" {
		unit = distance.Feet
	}
	visual, ok := distance.FromRvr(m[2], unit)
	if !ok {
		return nil, false
	}
	g := &RunwayVisualRangeGroup{base: base{raw: token}, Runway: rw, Visual: visual, Trend: m[5]}
	if m[3] != "" {
		v, ok := distance.FromRvr(m[3], unit)
		if !ok {
			return nil, false
		}
		g.Variable = &v
	}
	return g, true
}

func (r *RunwayVisualRangeGroup) Class() SyntaxClass { return ClassOther }
