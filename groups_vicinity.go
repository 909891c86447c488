package metaf

import "github.com/aerowx/metaf/direction"

// VicinityGroup is a remark phenomenon-in-the-vicinity observation, built up
// token by token via Combine: an optional "DSNT" (distant) flag, a
// phenomenon (CB, TCU), an optional direction, and an optional "MOV
// <direction>" movement suffix.
type VicinityGroup struct {
	base
	Distant    bool
	Phenomenon string
	Direction  *direction.Direction
	Moving     *direction.Direction

	awaitingMov bool
	bareDir     *direction.Direction
}

var vicinityPhenomena = map[string]bool{"CB": true, "TCU": true}

func parseVicinityGroup(token string, part ReportPart, meta *ReportMetadata) (Group, bool) {
	if token == "DSNT" {
		return &VicinityGroup{base: base{raw: token}, Distant: true}, true
	}
	if vicinityPhenomena[token] {
		return &VicinityGroup{base: base{raw: token}, Phenomenon: token}, true
	}
	if token == "MOV" {
		return &VicinityGroup{base: base{raw: token}, awaitingMov: true}, true
	}
	if d, ok := direction.FromCardinal(token); ok {
		return &VicinityGroup{base: base{raw: token}, bareDir: &d}, true
	}
	return nil, false
}

func (v *VicinityGroup) Class() SyntaxClass { return ClassOther }

func (v *VicinityGroup) Combine(next Group) (CombineResult, Group) {
	n, ok := next.(*VicinityGroup)
	if !ok {
		return NotCombined, nil
	}
	joinRaw := v.raw + " " + n.raw

	if v.Phenomenon == "" && n.Phenomenon != "" {
		merged := *v
		merged.Phenomenon = n.Phenomenon
		merged.raw = joinRaw
		return Combined, &merged
	}
	if v.Phenomenon != "" && v.Direction == nil && !v.awaitingMov && n.bareDir != nil {
		merged := *v
		merged.Direction = n.bareDir
		merged.raw = joinRaw
		return Combined, &merged
	}
	if v.Direction != nil && !v.awaitingMov && n.awaitingMov {
		merged := *v
		merged.awaitingMov = true
		merged.raw = joinRaw
		return Combined, &merged
	}
	if v.awaitingMov && n.bareDir != nil {
		merged := *v
		merged.Moving = n.bareDir
		merged.awaitingMov = false
		merged.raw = joinRaw
		return Combined, &merged
	}
	return NotCombined, nil
}
