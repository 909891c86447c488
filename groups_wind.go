package metaf

import (
	"regexp"
	"strconv"

	"github.com/aerowx/metaf/direction"
	"github.com/aerowx/metaf/speed"
	"k8s.io/utils/ptr"
)

// WindGroup is surface wind: direction, speed, optional gust speed, and a
// calm flag, with an optional trailing variable-direction range absorbed via
// Combine (e.g. "24008KT" followed by "210V270"). A WindGroup may also be a
// bare variable-direction token with nothing else set, existing only to be
// absorbed by the wind group that precedes it.
type WindGroup struct {
	base
	Direction    direction.Direction
	Speed        speed.Speed
	GustSpeed    *speed.Speed
	VariableFrom *direction.Direction
	VariableTo   *direction.Direction
	Calm         bool

	variableOnly bool
}

var windRx = regexp.MustCompile(`^(\d{3}|VRB|///)(\d{2,3}|//)(G(\d{2,3}))?(KT|MPS|KMH|MPH)$`)
var variableDirRx = regexp.MustCompile(`^(\d{3})V(\d{3})$`)

func parseWindGroup(token string, part ReportPart, meta *ReportMetadata) (Group, bool) {
	if m := variableDirRx.FindStringSubmatch(token); m != nil {
		from, ok1 := direction.FromDegrees(m[1])
		to, ok2 := direction.FromDegrees(m[2])
		if !ok1 || !ok2 {
			return nil, false
		}
		return &WindGroup{
			base:         base{raw: token},
			VariableFrom: &from,
			VariableTo:   &to,
			variableOnly: true,
		}, true
	}

	m := windRx.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	unit, ok := speed.UnitFrom(m[5])
	if !ok {
		return nil, false
	}

	var dir direction.Direction
	switch m[1] {
	case "VRB":
		dir = direction.FromVariable()
	case "///":
		dir = direction.FromOmitted()
	default:
		d, ok := direction.FromDegrees(m[1])
		if !ok {
			return nil, false
		}
		dir = d
	}

	speedDigits := m[2]
	if speedDigits == "//" {
		speedDigits = ""
	}
	spd, ok := speed.From(speedDigits, unit)
	if !ok {
		return nil, false
	}

	g := &WindGroup{
		base:      base{raw: token},
		Direction: dir,
		Speed:     spd,
		Calm:      dir.Status == direction.Value && dir.Degrees == 0 && spd.Value != nil && *spd.Value == 0,
	}

	if m[4] != "" {
		gv, err := strconv.Atoi(m[4])
		if err != nil {
			return nil, false
		}
		gs := speed.Speed{Value: ptr.To(gv), Unit: unit}
		g.GustSpeed = &gs
	}

	return g, true
}

func (w *WindGroup) Class() SyntaxClass { return ClassOther }

// Valid mirrors the original's WindGroup::isValid: wind speed must not be
// greater than or equal to a reported gust speed, and a reported gust speed
// must not be zero.
func (w *WindGroup) Valid() bool {
	if w.GustSpeed == nil || w.GustSpeed.Value == nil {
		return true
	}
	if *w.GustSpeed.Value == 0 {
		return false
	}
	if w.Speed.Value != nil && *w.Speed.Value >= *w.GustSpeed.Value {
		return false
	}
	return true
}

func (w *WindGroup) Combine(next Group) (CombineResult, Group) {
	if w.variableOnly || w.VariableFrom != nil {
		return NotCombined, nil
	}
	n, ok := next.(*WindGroup)
	if !ok || !n.variableOnly {
		return NotCombined, nil
	}
	merged := *w
	merged.VariableFrom = n.VariableFrom
	merged.VariableTo = n.VariableTo
	merged.raw = w.raw + " " + n.raw
	return Combined, &merged
}
