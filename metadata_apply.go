package metaf

import "regexp"

// applyMetadata folds an accepted group's semantic content into the
// report-level metadata. It never rejects a group; rejection is entirely
// the state machine's job. This runs once per dispatched token, before
// combine, so a later Combine that merges two TrendGroups does not need to
// re-derive the header time span.
func applyMetadata(meta *ReportMetadata, g Group) {
	switch v := g.(type) {
	case *KeywordGroup:
		applyKeyword(meta, v)
	case *LocationGroup:
		station := v.ICAO
		meta.Station = &station
	case *ReportTimeGroup:
		t := v.Time
		meta.ReportTime = &t
	case *TrendGroup:
		if v.headerTimeSpan {
			meta.TimeSpanFrom = v.From
			meta.TimeSpanUntil = v.Until
		}
	}
}

var ccLetterRx = regexp.MustCompile(`^CC([A-Z])$`)

func applyKeyword(meta *ReportMetadata, k *KeywordGroup) {
	switch k.class {
	case ClassSpeciKeyword:
		meta.Kind = KindMetar
		meta.IsSpeci = true
	case ClassAmd:
		meta.IsAmended = true
	case ClassCor:
		meta.IsCorrectional = true
	case ClassNil:
		meta.IsNil = true
	case ClassCnl:
		meta.IsCancelled = true
	case ClassMaintenance:
		meta.MaintenanceIndicator = true
	}

	switch k.Word {
	case "AUTO":
		meta.IsAutomated = true
	case "AO1":
		meta.IsAO1 = true
	case "AO1A":
		meta.IsAO1A = true
	case "AO2":
		meta.IsAO2 = true
	case "AO2A":
		meta.IsAO2A = true
	case "NOSPECI":
		meta.IsNoSpeci = true
	default:
		if m := ccLetterRx.FindStringSubmatch(k.Word); m != nil {
			meta.CorrectionNumber = uint32(m[1][0]-'A') + 1
		}
	}
}
