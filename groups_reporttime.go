package metaf

import (
	"regexp"

	"github.com/aerowx/metaf/mtime"
)

// ReportTimeGroup is the header's "DDHHMMZ" observation/issue time.
type ReportTimeGroup struct {
	base
	Time mtime.Time
}

func (r *ReportTimeGroup) Class() SyntaxClass { return ClassReportTime }

var reportTimeRx = regexp.MustCompile(`^(\d{6})Z$`)

func parseReportTimeGroup(token string, part ReportPart, meta *ReportMetadata) (Group, bool) {
	m := reportTimeRx.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	t, ok := mtime.FromDDHHMM(m[1])
	if !ok {
		return nil, false
	}
	return &ReportTimeGroup{base: base{raw: token}, Time: t}, true
}
