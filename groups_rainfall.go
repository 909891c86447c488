package metaf

import (
	"regexp"

	"github.com/aerowx/metaf/precipitation"
)

// RainfallGroup is the remark "RFdd.d/dd.d" rainfall-since-9am/since-last
// group, or one of the two-token "ICG MISG"/"PCPN MISG" sensor-missing
// reports assembled via Combine.
type RainfallGroup struct {
	base
	Since9AM      precipitation.Precipitation
	SinceLast     precipitation.Precipitation
	SinceLastSet  bool
	Kind          string // "", "ICG", "PCPN", "ICG_MISG", "PCPN_MISG", or "MISG_TOKEN" for a standalone MISG
}

var rainfallRx = regexp.MustCompile(`^RF(\d{2}\.\d)/(\d{2}\.\d)$`)

func parseRainfallGroup(token string, part ReportPart, meta *ReportMetadata) (Group, bool) {
	if token == "ICG" || token == "PCPN" {
		return &RainfallGroup{base: base{raw: token}, Kind: token}, true
	}
	if token == "MISG" {
		return &RainfallGroup{base: base{raw: token}, Kind: "MISG_TOKEN"}, true
	}
	m := rainfallRx.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	since9, ok := precipitation.FromRainfall(m[1])
	if !ok {
		return nil, false
	}
	sinceLast, ok := precipitation.FromRainfall(m[2])
	if !ok {
		return nil, false
	}
	return &RainfallGroup{base: base{raw: token}, Since9AM: since9, SinceLast: sinceLast, SinceLastSet: true}, true
}

func (r *RainfallGroup) Class() SyntaxClass { return ClassOther }

func (r *RainfallGroup) Combine(next Group) (CombineResult, Group) {
	if r.Kind != "ICG" && r.Kind != "PCPN" {
		return NotCombined, nil
	}
	n, ok := next.(*RainfallGroup)
	if !ok || n.Kind != "MISG_TOKEN" {
		return Invalidated, nil
	}
	return Combined, &RainfallGroup{base: base{raw: r.raw + " " + n.raw}, Kind: r.Kind + "_MISG"}
}

// Valid reports whether a speculative ICG/PCPN sensor-missing reading
// completed with its MISG token; a bare ICG/PCPN awaiting one is incomplete.
func (r *RainfallGroup) Valid() bool {
	return r.Kind != "ICG" && r.Kind != "PCPN"
}
