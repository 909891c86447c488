package metaf

import (
	"regexp"

	"github.com/aerowx/metaf/precipitation"
)

// PrecipitationKind distinguishes the concrete group variant carried by
// PrecipitationGroup: one of the type-prefix amount readings, or the
// snow-increasing-rapidly reading, which share no fields beyond the raw
// token.
type PrecipitationKind int

const (
	TotalPrecipitationHourly PrecipitationKind = iota
	SnowDepthOnGround
	FrozenPrecip3Or6Hourly
	FrozenPrecip3Hourly
	FrozenPrecip6Hourly
	FrozenPrecip24Hourly
	Snow6Hourly
	WaterEquivOfSnowOnGround
	IceAccretion1Hour
	IceAccretion3Hours
	IceAccretion6Hours
	SnowIncreasingRapidly
)

// PrecipitationAmount is retained as an alias of TotalPrecipitationHourly
// for the hourly "PRRRR" form's previous name.
const PrecipitationAmount = TotalPrecipitationHourly

// PrecipitationGroup is a remark precipitation-amount group: the hourly
// total (`P`), snow depth on ground (`4/`), the 3-/6-hourly frozen
// precipitation amount (`6`, whose actual period is inferred from the
// report time since the group itself doesn't say), the 24-hourly amount
// (`7`), the 6-hourly snow increase (`931`), water equivalent of snow on
// the ground (`933`), or 1/3/6-hourly ice accretion (`I1`/`I3`/`I6`).
type PrecipitationGroup struct {
	base
	Kind          PrecipitationKind
	Precipitation precipitation.Precipitation

	// Recent/Total hold the snow-increasing-rapidly reading once SNINCR's
	// "recent/total" depth token has been absorbed via Combine.
	Recent *precipitation.Precipitation
	Total  *precipitation.Precipitation

	awaitingDepths bool
}

var precipTypedRx = regexp.MustCompile(`^([P67])(\d{4}|////)$`)
var precipPrefixedRx = regexp.MustCompile(`^(4/|93[13]|I[136])(\d{3}|///)$`)
var snincrDepthsRx = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})$`)

// precipFactor is the unit-specific scale applied to a type's decoded digits:
// inches for snow depth, tenths of an inch for the snow/water-equivalent
// 6-hourly readings, hundredths of an inch everywhere else.
func precipFactor(kind PrecipitationKind) float64 {
	switch kind {
	case SnowDepthOnGround:
		return 1
	case Snow6Hourly, WaterEquivOfSnowOnGround:
		return 0.1
	default:
		return 0.01
	}
}

func precipKindFromPrefix(prefix string, meta *ReportMetadata) (PrecipitationKind, bool) {
	switch prefix {
	case "P":
		return TotalPrecipitationHourly, true
	case "6":
		switch classifyPrecipPeriod(meta) {
		case Period3Hourly:
			return FrozenPrecip3Hourly, true
		case Period6Hourly:
			return FrozenPrecip6Hourly, true
		default:
			return FrozenPrecip3Or6Hourly, true
		}
	case "7":
		return FrozenPrecip24Hourly, true
	case "4/":
		return SnowDepthOnGround, true
	case "931":
		return Snow6Hourly, true
	case "933":
		return WaterEquivOfSnowOnGround, true
	case "I1":
		return IceAccretion1Hour, true
	case "I3":
		return IceAccretion3Hours, true
	case "I6":
		return IceAccretion6Hours, true
	default:
		return 0, false
	}
}

// precipPeriod categorizes the report's observation hour into the 3-/6-
// hourly synoptic buckets the ambiguous `6` prefix depends on.
type precipPeriod int

const (
	periodUnknown precipPeriod = iota
	Period3Hourly
	Period6Hourly
)

func classifyPrecipPeriod(meta *ReportMetadata) precipPeriod {
	if meta.ReportTime == nil {
		return periodUnknown
	}
	switch meta.ReportTime.Hour {
	case 2, 3, 8, 9, 14, 15, 20, 21:
		return Period3Hourly
	case 0, 5, 6, 11, 12, 17, 18, 23:
		return Period6Hourly
	default:
		return periodUnknown
	}
}

func parsePrecipitationGroup(token string, part ReportPart, meta *ReportMetadata) (Group, bool) {
	if part != PartRmk {
		return nil, false
	}

	if token == "SNINCR" {
		return &PrecipitationGroup{base: base{raw: token}, Kind: SnowIncreasingRapidly, awaitingDepths: true}, true
	}

	if m := precipTypedRx.FindStringSubmatch(token); m != nil {
		kind, ok := precipKindFromPrefix(m[1], meta)
		if !ok {
			return nil, false
		}
		p, ok := precipitation.FromRemark(m[2], precipFactor(kind), true)
		if !ok {
			return nil, false
		}
		return &PrecipitationGroup{base: base{raw: token}, Kind: kind, Precipitation: p}, true
	}

	if m := precipPrefixedRx.FindStringSubmatch(token); m != nil {
		kind, ok := precipKindFromPrefix(m[1], meta)
		if !ok {
			return nil, false
		}
		p, ok := precipitation.FromRemark(m[2], precipFactor(kind), true)
		if !ok {
			return nil, false
		}
		return &PrecipitationGroup{base: base{raw: token}, Kind: kind, Precipitation: p}, true
	}

	return nil, false
}

func (p *PrecipitationGroup) Class() SyntaxClass { return ClassOther }

// Combine absorbs SNINCR's trailing "recent/total" snow-depth token, both in
// whole inches, e.g. "SNINCR 4/12" meaning 4in in the past hour, 12in total
// on the ground.
func (p *PrecipitationGroup) Combine(next Group) (CombineResult, Group) {
	if !p.awaitingDepths {
		return NotCombined, nil
	}
	switch next.(type) {
	case *PlainTextGroup, *UnknownGroup:
	default:
		return Invalidated, nil
	}
	m := snincrDepthsRx.FindStringSubmatch(next.Raw())
	if m == nil {
		return Invalidated, nil
	}
	recent, ok := precipitation.FromRemark(m[1], 1, false)
	if !ok {
		return Invalidated, nil
	}
	total, ok := precipitation.FromRemark(m[2], 1, false)
	if !ok {
		return Invalidated, nil
	}
	merged := *p
	merged.Recent = &recent
	merged.Total = &total
	merged.awaitingDepths = false
	merged.raw = p.raw + " " + next.Raw()
	return Combined, &merged
}

// Valid reports whether a speculative SNINCR reading completed with its
// recent/total depths token; a bare SNINCR awaiting one is incomplete.
func (p *PrecipitationGroup) Valid() bool {
	return !p.awaitingDepths
}
