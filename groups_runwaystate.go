package metaf

import (
	"regexp"

	"github.com/aerowx/metaf/friction"
	"github.com/aerowx/metaf/precipitation"
	"github.com/aerowx/metaf/runway"
)

// RunwayStateGroup is "R<runway>/<deposit><extent><depth><friction>" or the
// "R<runway>/CLRD<friction>" cleared-runway shorthand.
type RunwayStateGroup struct {
	base
	Runway      runway.Runway
	Cleared     bool
	DepositType *int
	ExtentTenths *int
	Depth       precipitation.Precipitation
	Friction    friction.SurfaceFriction
}

var runwayStateClrdRx = regexp.MustCompile(`^R(\d{2}[LCR]?|88|99)/CLRD([0-9/]{2})$`)
var runwayStateRx = regexp.MustCompile(`^R(\d{2}[LCR]?|88|99)/([0-9/])([0-9/])([0-9/]{2})([0-9/]{2})$`)

func parseRunwayStateGroup(token string, part ReportPart, meta *ReportMetadata) (Group, bool) {
	if m := runwayStateClrdRx.FindStringSubmatch(token); m != nil {
		rw, ok := runway.From("R" + m[1])
		if !ok {
			return nil, false
		}
		fr, ok := friction.From(m[2])
		if !ok {
			return nil, false
		}
		return &RunwayStateGroup{base: base{raw: token}, Runway: rw, Cleared: true, Friction: fr}, true
	}

	m := runwayStateRx.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	rw, ok := runway.From("R" + m[1])
	if !ok {
		return nil, false
	}
	g := &RunwayStateGroup{base: base{raw: token}, Runway: rw}
	if m[2] != "/" {
		d := int(m[2][0] - '0')
		g.DepositType = &d
	}
	if m[3] != "/" {
		e := int(m[3][0] - '0')
		g.ExtentTenths = &e
	}
	if m[4] == "//" {
		g.Depth = precipitation.Precipitation{Status: precipitation.NotReported}
	} else {
		depth, ok := precipitation.FromRunwayDeposits(m[4])
		if !ok {
			return nil, false
		}
		g.Depth = depth
	}
	if m[5] == "//" {
		g.Friction = friction.SurfaceFriction{Status: friction.NotReported}
	} else {
		fr, ok := friction.From(m[5])
		if !ok {
			return nil, false
		}
		g.Friction = fr
	}
	return g, true
}

func (r *RunwayStateGroup) Class() SyntaxClass { return ClassOther }
