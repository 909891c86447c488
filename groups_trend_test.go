package metaf

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func mustTrend(t *testing.T, token string, part ReportPart) *TrendGroup {
	t.Helper()
	g, ok := parseTrendGroup(token, part, &ReportMetadata{})
	if !ok {
		t.Fatalf("parseTrendGroup(%q) did not match", token)
	}
	return g.(*TrendGroup)
}

func TestTrendGroupCombine(t *testing.T) {
	Convey("TrendGroup combine chain", t, func() {
		Convey("PROB40 absorbs a following TEMPO into PROB40_TEMPO", func() {
			prob := mustTrend(t, "PROB40", PartTaf)
			tempo := mustTrend(t, "TEMPO", PartTaf)
			cr, merged := prob.Combine(tempo)
			So(cr, ShouldEqual, Combined)
			mt := merged.(*TrendGroup)
			So(mt.Kind, ShouldEqual, "PROB40_TEMPO")
		})

		Convey("an open trend absorbs a following bare time span", func() {
			becmg := mustTrend(t, "BECMG", PartTaf)
			span := mustTrend(t, "0420/0424", PartTaf)
			cr, merged := becmg.Combine(span)
			So(cr, ShouldEqual, Combined)
			mt := merged.(*TrendGroup)
			So(*mt.From.Day, ShouldEqual, 4)
			So(mt.From.Hour, ShouldEqual, 20)
			So(*mt.Until.Day, ShouldEqual, 4)
			So(mt.Until.Hour, ShouldEqual, 24)
		})

		Convey("an open trend absorbs a standalone FM marker", func() {
			tempo := mustTrend(t, "TEMPO", PartTaf)
			fm := mustTrend(t, "FM1445", PartTaf)
			cr, merged := tempo.Combine(fm)
			So(cr, ShouldEqual, Combined)
			mt := merged.(*TrendGroup)
			So(mt.From.Hour, ShouldEqual, 14)
			So(mt.From.Minute, ShouldEqual, 45)
		})

		Convey("an open trend does not re-absorb a second FROM", func() {
			tempo := mustTrend(t, "TEMPO", PartTaf)
			fm1 := mustTrend(t, "FM1445", PartTaf)
			_, merged := tempo.Combine(fm1)
			mt := merged.(*TrendGroup)

			fm2 := mustTrend(t, "FM1600", PartTaf)
			cr, _ := mt.Combine(fm2)
			So(cr, ShouldEqual, NotCombined)
		})

		Convey("a non-trend group never combines", func() {
			becmg := mustTrend(t, "BECMG", PartTaf)
			wind, ok := parseWindGroup("24005KT", PartTaf, &ReportMetadata{})
			So(ok, ShouldBeTrue)
			cr, _ := becmg.Combine(wind)
			So(cr, ShouldEqual, NotCombined)
		})
	})

	Convey("TrendGroup.Class", t, func() {
		Convey("a header time span is ClassTimeSpan", func() {
			span := mustTrend(t, "0412/0512", PartHeader)
			So(span.Class(), ShouldEqual, ClassTimeSpan)
		})
		Convey("a body time span is ClassOther", func() {
			span := mustTrend(t, "0412/0512", PartTaf)
			So(span.Class(), ShouldEqual, ClassOther)
		})
	})
}
