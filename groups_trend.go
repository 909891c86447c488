package metaf

import (
	"regexp"
	"strings"

	"github.com/aerowx/metaf/mtime"
)

// TrendGroup is any of: NOSIG, BECMG, TEMPO, INTER, a bare FM (FROM), TL or
// AT time marker, a bare PROB30/PROB40, a bare time span "DDHH/DDHH", or a deficient
// composition of these awaiting its siblings via Combine. The header-level
// TAF validity time span ("0412/0512" right after the report time) is the
// same struct as the body's trend time spans; only Class() distinguishes
// them, via headerTimeSpan.
type TrendGroup struct {
	base
	Kind        string
	Probability int
	From        *mtime.Time
	Until       *mtime.Time
	At          *mtime.Time

	headerTimeSpan bool
}

var trendTimeSpanRx = regexp.MustCompile(`^(\d{4})/(\d{4})$`)

func decodeMarkerTime(s string) (mtime.Time, bool) {
	switch len(s) {
	case 6:
		return mtime.FromDDHHMM(s)
	case 4:
		return mtime.FromHHMM(s)
	default:
		return mtime.Time{}, false
	}
}

func parseTrendGroup(token string, part ReportPart, meta *ReportMetadata) (Group, bool) {
	switch token {
	case "NOSIG":
		return &TrendGroup{base: base{raw: token}, Kind: "NOSIG"}, true
	case "BECMG", "TEMPO", "INTER":
		return &TrendGroup{base: base{raw: token}, Kind: token}, true
	case "PROB30", "PROB40":
		p := 30
		if token == "PROB40" {
			p = 40
		}
		return &TrendGroup{base: base{raw: token}, Kind: token, Probability: p}, true
	}

	if strings.HasPrefix(token, "FM") && len(token) > 2 {
		if t, ok := decodeMarkerTime(token[2:]); ok {
			return &TrendGroup{base: base{raw: token}, Kind: "FROM", From: &t}, true
		}
	}
	if strings.HasPrefix(token, "TL") && len(token) > 2 {
		if t, ok := decodeMarkerTime(token[2:]); ok {
			return &TrendGroup{base: base{raw: token}, Until: &t}, true
		}
	}
	if strings.HasPrefix(token, "AT") && len(token) > 2 {
		if t, ok := decodeMarkerTime(token[2:]); ok {
			return &TrendGroup{base: base{raw: token}, At: &t}, true
		}
	}

	if m := trendTimeSpanRx.FindStringSubmatch(token); m != nil {
		from, ok1 := mtime.FromDDHH(m[1])
		until, ok2 := mtime.FromDDHH(m[2])
		if ok1 && ok2 {
			return &TrendGroup{
				base:           base{raw: token},
				From:           &from,
				Until:          &until,
				headerTimeSpan: part == PartHeader,
			}, true
		}
	}
	return nil, false
}

func (t *TrendGroup) Class() SyntaxClass {
	if t.headerTimeSpan {
		return ClassTimeSpan
	}
	return ClassOther
}

func isOpenTrend(kind string) bool {
	switch kind {
	case "BECMG", "TEMPO", "INTER", "PROB30", "PROB40", "PROB30_TEMPO", "PROB40_TEMPO":
		return true
	}
	return false
}

func (t *TrendGroup) Combine(next Group) (CombineResult, Group) {
	n, ok := next.(*TrendGroup)
	if !ok {
		return NotCombined, nil
	}

	joinRaw := t.raw + " " + n.raw

	if (t.Kind == "PROB30" || t.Kind == "PROB40") && n.Kind == "TEMPO" && t.From == nil {
		merged := *t
		merged.Kind = t.Kind + "_TEMPO"
		merged.raw = joinRaw
		return Combined, &merged
	}

	if isOpenTrend(t.Kind) && t.From == nil && t.Until == nil &&
		n.Kind == "" && n.From != nil && n.Until != nil && !n.headerTimeSpan {
		merged := *t
		merged.From, merged.Until = n.From, n.Until
		merged.raw = joinRaw
		return Combined, &merged
	}

	if isOpenTrend(t.Kind) {
		switch {
		case n.From != nil && t.From == nil:
			merged := *t
			merged.From = n.From
			merged.raw = joinRaw
			return Combined, &merged
		case n.Until != nil && t.Until == nil:
			merged := *t
			merged.Until = n.Until
			merged.raw = joinRaw
			return Combined, &merged
		case n.At != nil && t.At == nil:
			merged := *t
			merged.At = n.At
			merged.raw = joinRaw
			return Combined, &merged
		}
	}

	return NotCombined, nil
}

// Valid checks until > from modulo month wrap, when both are set.
func (t *TrendGroup) Valid() bool {
	if t.From != nil && t.Until != nil {
		return mtime.After(*t.From, *t.Until)
	}
	return true
}
