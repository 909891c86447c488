package metaf

import "regexp"

// LocationGroup is the report's ICAO station identifier: four letters or
// digits, header only.
type LocationGroup struct {
	base
	ICAO string
}

func (l *LocationGroup) Class() SyntaxClass { return ClassLocation }

var icaoRx = regexp.MustCompile(`^[A-Z0-9]{4}$`)

func parseLocationGroup(token string, part ReportPart, meta *ReportMetadata) (Group, bool) {
	if !icaoRx.MatchString(token) {
		return nil, false
	}
	return &LocationGroup{base: base{raw: token}, ICAO: token}, true
}
