package metaf

import (
	"regexp"
	"strconv"

	"github.com/aerowx/metaf/pressure"
)

// PressureTendencyGroup is the 3-hourly remark pressure-tendency group
// "5appp": a WMO tendency type (0-8) plus the magnitude in tenths of hPa.
type PressureTendencyGroup struct {
	base
	Type     int
	ChangeHPa float64
}

var pressureTendencyRx = regexp.MustCompile(`^5([0-8])(\d{3})$`)

func parsePressureTendencyGroup(token string, part ReportPart, meta *ReportMetadata) (Group, bool) {
	m := pressureTendencyRx.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	typ, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, false
	}
	change, ok := pressure.FromTendency(m[2])
	if !ok {
		return nil, false
	}
	if typ >= 5 {
		change = -change
	}
	return &PressureTendencyGroup{base: base{raw: token}, Type: typ, ChangeHPa: change}, true
}

func (p *PressureTendencyGroup) Class() SyntaxClass { return ClassOther }
