package metaf

import "github.com/aerowx/metaf/runway"

// SecondaryLocationGroup is the low-layer wind shear group: "WS ALL RWY"
// (wind shear on all runways) or "WS R27" (wind shear on a specific
// runway), assembled token-by-token via Combine.
type SecondaryLocationGroup struct {
	base
	Kind   string // "WS", "WS_ALL", "WS_ALL_RWY", "WS_RWY", "ALL_TOKEN", "RWY_TOKEN", "RWY_BARE"
	Runway *runway.Runway
}

func parseSecondaryLocationGroup(token string, part ReportPart, meta *ReportMetadata) (Group, bool) {
	switch token {
	case "WS":
		return &SecondaryLocationGroup{base: base{raw: token}, Kind: "WS"}, true
	case "ALL":
		return &SecondaryLocationGroup{base: base{raw: token}, Kind: "ALL_TOKEN"}, true
	case "RWY":
		return &SecondaryLocationGroup{base: base{raw: token}, Kind: "RWY_TOKEN"}, true
	}
	if rw, ok := runway.From(token); ok {
		return &SecondaryLocationGroup{base: base{raw: token}, Kind: "RWY_BARE", Runway: &rw}, true
	}
	return nil, false
}

func (s *SecondaryLocationGroup) Class() SyntaxClass { return ClassOther }

// awaitingSibling reports whether s is a speculative, incomplete wind-shear
// group still expecting a follow-up token ("WS" expects ALL/a runway,
// "WS_ALL" expects "RWY"); anything else is already a complete group.
func (s *SecondaryLocationGroup) awaitingSibling() bool {
	return s.Kind == "WS" || s.Kind == "WS_ALL"
}

func (s *SecondaryLocationGroup) Combine(next Group) (CombineResult, Group) {
	n, ok := next.(*SecondaryLocationGroup)
	if !ok {
		if s.awaitingSibling() {
			return Invalidated, nil
		}
		return NotCombined, nil
	}

	joinRaw := s.raw + " " + n.raw
	switch {
	case s.Kind == "WS" && n.Kind == "ALL_TOKEN":
		return Combined, &SecondaryLocationGroup{base: base{raw: joinRaw}, Kind: "WS_ALL"}
	case s.Kind == "WS" && n.Kind == "RWY_BARE":
		return Combined, &SecondaryLocationGroup{base: base{raw: joinRaw}, Kind: "WS_RWY", Runway: n.Runway}
	case s.Kind == "WS_ALL" && n.Kind == "RWY_TOKEN":
		return Combined, &SecondaryLocationGroup{base: base{raw: joinRaw}, Kind: "WS_ALL_RWY"}
	}

	if s.awaitingSibling() {
		return Invalidated, nil
	}
	return NotCombined, nil
}

// Valid mirrors the original's SecondaryLocationGroup::isValid: an
// incomplete (speculative) group is never valid, and a carried runway must
// itself be valid.
func (s *SecondaryLocationGroup) Valid() bool {
	if s.awaitingSibling() {
		return false
	}
	if s.Runway != nil && !s.Runway.Valid() {
		return false
	}
	return true
}
