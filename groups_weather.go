package metaf

import "regexp"

// WeatherGroup is a present/recent weather phenomena group: an optional
// intensity/proximity qualifier, an optional descriptor, and up to three
// phenomena codes, with at least a descriptor or one phenomenon present
// (e.g. "-RA", "+TSRA", "VCSH", "FZFG").
type WeatherGroup struct {
	base
	Intensity  string
	Descriptor string
	Phenomena  []string
	Recent     bool
}

var weatherDescriptors = map[string]bool{
	"MI": true, "PR": true, "BC": true, "DR": true, "BL": true, "SH": true, "TS": true, "FZ": true,
}

var weatherPhenomena = map[string]bool{
	"DZ": true, "RA": true, "SN": true, "SG": true, "IC": true, "PL": true,
	"GR": true, "GS": true, "UP": true,
	"BR": true, "FG": true, "FU": true, "VA": true, "DU": true, "SA": true,
	"HZ": true, "PY": true,
	"PO": true, "SQ": true, "FC": true, "SS": true, "DS": true,
}

var weatherGroupRx = regexp.MustCompile(`^(-|\+|VC)?(RE)?([A-Z]{2})([A-Z]{2})?([A-Z]{2})?$`)

func parseWeatherGroup(token string, part ReportPart, meta *ReportMetadata) (Group, bool) {
	if token == "NSW" {
		return nil, false // KeywordGroup
	}
	m := weatherGroupRx.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	g := &WeatherGroup{base: base{raw: token}, Intensity: m[1], Recent: m[2] == "RE"}

	rest := []string{m[3], m[4], m[5]}
	idx := 0
	if rest[0] != "" && weatherDescriptors[rest[0]] {
		g.Descriptor = rest[0]
		idx = 1
	}
	for ; idx < len(rest); idx++ {
		code := rest[idx]
		if code == "" {
			continue
		}
		if !weatherPhenomena[code] {
			return nil, false
		}
		g.Phenomena = append(g.Phenomena, code)
	}
	if g.Descriptor == "" && len(g.Phenomena) == 0 {
		return nil, false
	}
	return g, true
}

func (w *WeatherGroup) Class() SyntaxClass { return ClassOther }
