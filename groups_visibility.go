package metaf

import (
	"regexp"
	"strconv"

	"github.com/aerowx/metaf/direction"
	"github.com/aerowx/metaf/distance"
	"k8s.io/utils/ptr"
)

// VisibilityGroup is prevailing (or, with a cardinal suffix, minimum
// directional) visibility in meters, or statute-mile visibility. CAVOK is
// recognized by KeywordGroup, since it carries no distance value itself.
type VisibilityGroup struct {
	base
	Distance  distance.Distance
	Direction *direction.Direction

	milesRaw     string
	pendingWhole bool
}

var visMetersRx = regexp.MustCompile(`^(\d{4})(N|NE|E|SE|S|SW|W|NW)?$`)
var visMilesRx = regexp.MustCompile(`^([PM]?)(\d{1,2}(?:/\d{1,2})?)SM$`)
var visWholeMileRx = regexp.MustCompile(`^\d$`)

func parseVisibilityGroup(token string, part ReportPart, meta *ReportMetadata) (Group, bool) {
	if m := visMetersRx.FindStringSubmatch(token); m != nil {
		d, ok := distance.FromMeters(m[1])
		if !ok {
			return nil, false
		}
		g := &VisibilityGroup{base: base{raw: token}, Distance: d}
		if m[2] != "" {
			dir, ok := direction.FromCardinal(m[2])
			if ok {
				g.Direction = &dir
			}
		}
		return g, true
	}

	if m := visMilesRx.FindStringSubmatch(token); m != nil {
		raw := m[1] + m[2]
		d, ok := distance.FromMiles(raw)
		if !ok {
			return nil, false
		}
		return &VisibilityGroup{base: base{raw: token}, Distance: d, milesRaw: raw}, true
	}

	if (part == PartMetar || part == PartTaf) && visWholeMileRx.MatchString(token) {
		v, _ := strconv.Atoi(token)
		d := distance.Distance{Integer: ptr.To(v), Unit: distance.StatuteMiles}
		return &VisibilityGroup{base: base{raw: token}, Distance: d, milesRaw: token, pendingWhole: true}, true
	}

	return nil, false
}

func (v *VisibilityGroup) Class() SyntaxClass { return ClassOther }

func (v *VisibilityGroup) Combine(next Group) (CombineResult, Group) {
	if !v.pendingWhole {
		return NotCombined, nil
	}
	n, ok := next.(*VisibilityGroup)
	if !ok || n.Distance.Unit != distance.StatuteMiles || n.Distance.Numerator == nil {
		return Invalidated, nil
	}
	d, ok := distance.FromMiles(v.milesRaw + " " + n.milesRaw)
	if !ok {
		return Invalidated, nil
	}
	return Combined, &VisibilityGroup{base: base{raw: v.raw + " " + n.raw}, Distance: d}
}

// Valid mirrors the original's no-incomplete-integer rule: a bare
// whole-mile fragment awaiting its fraction is never itself a complete,
// valid value.
func (v *VisibilityGroup) Valid() bool {
	return !v.pendingWhole
}
