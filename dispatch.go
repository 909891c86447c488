package metaf

import "strings"

// dispatchEntry pairs a group kind's parse function with the report parts it
// is eligible for.
type dispatchEntry struct {
	parts []ReportPart
	parse func(token string, part ReportPart, meta *ReportMetadata) (Group, bool)
}

func eligible(parts []ReportPart, part ReportPart) bool {
	for _, p := range parts {
		if p == part {
			return true
		}
	}
	return false
}

// registry is the fixed, specificity-ordered list of group alternatives the
// dispatcher tries. The first match wins.
var registry = []dispatchEntry{
	{[]ReportPart{PartHeader, PartMetar, PartTaf, PartRmk}, parseKeywordGroup},
	{[]ReportPart{PartHeader}, parseLocationGroup},
	{[]ReportPart{PartHeader}, parseReportTimeGroup},
	{[]ReportPart{PartHeader, PartMetar, PartTaf}, parseTrendGroup},
	{[]ReportPart{PartMetar, PartTaf}, parseWindGroup},
	{[]ReportPart{PartMetar, PartTaf}, parseVisibilityGroup},
	{[]ReportPart{PartMetar, PartTaf}, parseCloudGroup},
	{[]ReportPart{PartMetar, PartTaf}, parseWeatherGroup},
	{[]ReportPart{PartMetar}, parseTemperatureGroup},
	{[]ReportPart{PartTaf}, parseTemperatureForecastGroup},
	{[]ReportPart{PartMetar, PartTaf}, parsePressureGroup},
	{[]ReportPart{PartMetar}, parseRunwayVisualRangeGroup},
	{[]ReportPart{PartMetar, PartRmk}, parseRunwayStateGroup},
	{[]ReportPart{PartMetar, PartTaf}, parseSecondaryLocationGroup},
	{[]ReportPart{PartRmk}, parseRainfallGroup},
	{[]ReportPart{PartRmk}, parseSeaSurfaceGroup},
	{[]ReportPart{PartMetar, PartTaf, PartRmk}, parseColourCodeGroup},
	{[]ReportPart{PartRmk}, parseMinMaxTemperatureGroup},
	{[]ReportPart{PartRmk}, parsePrecipitationGroup},
	{[]ReportPart{PartRmk}, parseLayerForecastGroup},
	{[]ReportPart{PartRmk}, parsePressureTendencyGroup},
	{[]ReportPart{PartRmk}, parseCloudTypesGroup},
	{[]ReportPart{PartRmk}, parseLowMidHighCloudGroup},
	{[]ReportPart{PartRmk}, parseLightningGroup},
	{[]ReportPart{PartRmk}, parseVicinityGroup},
	{[]ReportPart{PartRmk}, parseMiscGroup},
}

// dispatch tries each eligible group alternative in order and returns the
// first match. On total failure it falls back to PlainTextGroup, the
// source's universal fallback, except in remarks for a token that contains
// a digit (and so looks like a coded group whose payload just failed to
// decode) where it falls back to UnknownGroup instead.
func dispatch(token string, part ReportPart, meta *ReportMetadata) Group {
	for _, e := range registry {
		if !eligible(e.parts, part) {
			continue
		}
		if g, ok := e.parse(token, part, meta); ok {
			return g
		}
	}
	if part == PartRmk && strings.ContainsAny(token, "0123456789") {
		return newUnknownGroup(token)
	}
	return newPlainTextGroup(token)
}
