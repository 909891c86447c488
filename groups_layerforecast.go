package metaf

import (
	"regexp"
	"strconv"

	"github.com/aerowx/metaf/distance"
)

// LayerForecastType distinguishes an icing from a turbulence forecast layer.
type LayerForecastType int

const (
	LayerIcing LayerForecastType = iota
	LayerTurbulence
)

// LayerForecastGroup is a TAF icing or turbulence forecast layer: an
// intensity code plus a base-height/depth pair.
type LayerForecastGroup struct {
	base
	Type      LayerForecastType
	Intensity int
	Layer     distance.LayerForecast
}

var layerForecastRx = regexp.MustCompile(`^([56])(\d)(\d{4})$`)

func parseLayerForecastGroup(token string, part ReportPart, meta *ReportMetadata) (Group, bool) {
	m := layerForecastRx.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	layer, ok := distance.FromLayer(m[3])
	if !ok {
		return nil, false
	}
	intensity, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, false
	}
	t := LayerIcing
	if m[1] == "6" {
		t = LayerTurbulence
	}
	return &LayerForecastGroup{base: base{raw: token}, Type: t, Intensity: intensity, Layer: layer}, true
}

func (l *LayerForecastGroup) Class() SyntaxClass { return ClassOther }
