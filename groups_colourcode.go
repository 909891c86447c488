package metaf

import "regexp"

// ColourCode is the NATO/ICAO visibility-and-ceiling colour state.
type ColourCode string

const (
	ColourBlue  ColourCode = "BLU"
	ColourWhite ColourCode = "WHT"
	ColourGreen ColourCode = "GRN"
	ColourYellow1 ColourCode = "YLO1"
	ColourYellow2 ColourCode = "YLO2"
	ColourYellow ColourCode = "YLO"
	ColourAmber ColourCode = "AMB"
	ColourRed   ColourCode = "RED"
)

// ColourCodeGroup is the colour code, with the "BLACK" prefix some stations
// add to mean the aerodrome is additionally closed.
type ColourCodeGroup struct {
	base
	Code   ColourCode
	Closed bool
}

var colourCodeRx = regexp.MustCompile(`^(BLACK)?(BLU|WHT|GRN|YLO1|YLO2|YLO|AMB|RED)$`)

func parseColourCodeGroup(token string, part ReportPart, meta *ReportMetadata) (Group, bool) {
	m := colourCodeRx.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	return &ColourCodeGroup{base: base{raw: token}, Code: ColourCode(m[2]), Closed: m[1] == "BLACK"}, true
}

func (c *ColourCodeGroup) Class() SyntaxClass { return ClassOther }
