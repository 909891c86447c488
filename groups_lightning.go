package metaf

import "github.com/aerowx/metaf/direction"

// LightningGroup is a remark lightning observation: "LTG" (optionally typed
// LTGIC/LTGCG/LTGCC/LTGCA), with an optional frequency and direction
// absorbed from the tokens that follow via Combine.
type LightningGroup struct {
	base
	Kind      string // "LTG", "LTGIC", "LTGCG", "LTGCC", "LTGCA"
	Frequency string // "OCNL", "FRQ", "CONS"
	Distant   bool
	Direction *direction.Direction

	awaitingFollowup bool
}

var lightningKinds = map[string]bool{"LTG": true, "LTGIC": true, "LTGCG": true, "LTGCC": true, "LTGCA": true}
var lightningFrequencies = map[string]bool{"OCNL": true, "FRQ": true, "CONS": true}

func parseLightningGroup(token string, part ReportPart, meta *ReportMetadata) (Group, bool) {
	if lightningKinds[token] {
		return &LightningGroup{base: base{raw: token}, Kind: token, awaitingFollowup: true}, true
	}
	if lightningFrequencies[token] {
		return &LightningGroup{base: base{raw: token}, Kind: token}, true
	}
	return nil, false
}

func (l *LightningGroup) Class() SyntaxClass { return ClassOther }

func (l *LightningGroup) Combine(next Group) (CombineResult, Group) {
	if !l.awaitingFollowup {
		return NotCombined, nil
	}
	switch n := next.(type) {
	case *LightningGroup:
		if l.Frequency == "" && lightningFrequencies[n.Kind] {
			merged := *l
			merged.Frequency = n.Kind
			merged.raw = l.raw + " " + n.raw
			return Combined, &merged
		}
	case *VicinityGroup:
		dir := n.Direction
		if dir == nil {
			dir = n.bareDir
		}
		if l.Direction == nil && (n.Distant || dir != nil) {
			merged := *l
			merged.Distant = l.Distant || n.Distant
			merged.Direction = dir
			merged.raw = l.raw + " " + n.raw
			return Combined, &merged
		}
	}
	return NotCombined, nil
}
