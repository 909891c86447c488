package metaf

import "regexp"

// KeywordGroup is a fixed, literal token recognized verbatim: report-type and
// header markers (METAR, SPECI, TAF, AMD, COR, NIL, CNL), simple body flags
// (AUTO, CAVOK, CLR, SKC, NCD, NSC, NSW, SNOCLO, R/SNOCLO, WSCONDS, RMK), the
// maintenance indicator ($), and the automated-station/remark flags that
// appear only in remarks (AO1, AO1A, AO2, AO2A, NOSPECI, PRESFR, PRESRR,
// RVRNO, PWINO, PNO, FZRANO, TSNO, SLPNO, FROIN, CCx).
//
// NOSIG is deliberately absent here even though it is a single fixed word:
// it is recognized by TrendGroup instead, since it is one of the trend-type
// alternatives the same way BECMG/TEMPO/INTER are.
type KeywordGroup struct {
	base
	Word string
	class SyntaxClass
}

func (k *KeywordGroup) Class() SyntaxClass { return k.class }

var headerKeywords = map[string]SyntaxClass{
	"METAR": ClassMetarKeyword,
	"SPECI": ClassSpeciKeyword,
	"TAF":   ClassTafKeyword,
	"AMD":   ClassAmd,
	"COR":   ClassCor,
	"NIL":   ClassNil,
	"CNL":   ClassCnl,
}

var bodyKeywords = map[string]bool{
	"AUTO": true, "CAVOK": true, "CLR": true, "SKC": true, "NCD": true,
	"NSC": true, "NSW": true, "SNOCLO": true, "R/SNOCLO": true,
	"WSCONDS": true, "COR": true,
}

var remarkKeywords = map[string]bool{
	"AO1": true, "AO1A": true, "AO2": true, "AO2A": true,
	"NOSPECI": true, "PRESFR": true, "PRESRR": true, "RVRNO": true,
	"PWINO": true, "PNO": true, "FZRANO": true, "TSNO": true,
	"SLPNO": true, "FROIN": true,
}

var correctionLetterRx = regexp.MustCompile(`^CC([A-Z])$`)

func parseKeywordGroup(token string, part ReportPart, meta *ReportMetadata) (Group, bool) {
	if part == PartHeader {
		if class, ok := headerKeywords[token]; ok {
			return &KeywordGroup{base: base{raw: token}, Word: token, class: class}, true
		}
		return nil, false
	}

	// NIL/CNL may also appear directly in the report body (e.g. a METAR body
	// truncated by an unexpected NIL), not only in the header.
	if (part == PartMetar || part == PartTaf) && (token == "NIL" || token == "CNL") {
		return &KeywordGroup{base: base{raw: token}, Word: token, class: headerKeywords[token]}, true
	}

	if token == "RMK" {
		return &KeywordGroup{base: base{raw: token}, Word: token, class: ClassRmk}, true
	}
	if token == "$" {
		return &KeywordGroup{base: base{raw: token}, Word: token, class: ClassMaintenance}, true
	}

	if (part == PartMetar || part == PartTaf) && bodyKeywords[token] {
		return &KeywordGroup{base: base{raw: token}, Word: token, class: ClassOther}, true
	}

	if part == PartRmk {
		if remarkKeywords[token] {
			return &KeywordGroup{base: base{raw: token}, Word: token, class: ClassOther}, true
		}
		if correctionLetterRx.MatchString(token) {
			return &KeywordGroup{base: base{raw: token}, Word: token, class: ClassOther}, true
		}
	}

	return nil, false
}
