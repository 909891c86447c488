package metaf

import (
	"regexp"

	"github.com/aerowx/metaf/distance"
)

// CloudAmount is how much of the sky a cloud layer covers.
type CloudAmount string

const (
	Few              CloudAmount = "FEW"
	Scattered        CloudAmount = "SCT"
	Broken           CloudAmount = "BKN"
	Overcast         CloudAmount = "OVC"
	AmountNotDefined CloudAmount = "///"
)

// CloudGroup is a single cloud layer (amount, base height, and an optional
// convective significant-cloud type) or a vertical-visibility observation.
// NSC/SKC/NCD/CLR are recognized by KeywordGroup instead, since they carry
// no layer data of their own.
type CloudGroup struct {
	base
	Amount                CloudAmount
	Base                  distance.Distance
	BaseNotReported       bool
	Cumulonimbus          bool
	ToweringCumulus       bool
	ConvectiveNotReported bool
	VerticalVisibility    bool
}

var cloudLayerRx = regexp.MustCompile(`^(FEW|SCT|BKN|OVC)(\d{3}|///)(CB|TCU|///)?$`)
var verticalVisibilityRx = regexp.MustCompile(`^VV(\d{3}|///)$`)

func parseCloudGroup(token string, part ReportPart, meta *ReportMetadata) (Group, bool) {
	if m := verticalVisibilityRx.FindStringSubmatch(token); m != nil {
		g := &CloudGroup{base: base{raw: token}, VerticalVisibility: true}
		if m[1] == "///" {
			g.BaseNotReported = true
			return g, true
		}
		d, ok := distance.FromHeight(m[1])
		if !ok {
			return nil, false
		}
		g.Base = d
		return g, true
	}

	m := cloudLayerRx.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	g := &CloudGroup{base: base{raw: token}, Amount: CloudAmount(m[1])}
	if m[2] == "///" {
		g.BaseNotReported = true
	} else {
		d, ok := distance.FromHeight(m[2])
		if !ok {
			return nil, false
		}
		g.Base = d
	}
	switch m[3] {
	case "CB":
		g.Cumulonimbus = true
	case "TCU":
		g.ToweringCumulus = true
	case "///":
		g.ConvectiveNotReported = true
	}
	return g, true
}

func (c *CloudGroup) Class() SyntaxClass { return ClassOther }
