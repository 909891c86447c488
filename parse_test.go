package metaf

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseScenarios(t *testing.T) {
	Convey("Typical METAR", t, func() {
		res := ExtendedParse("METAR ZZZZ 041115Z 24005KT 9999 FEW040 25/18 Q1011 NOSIG=")
		So(res.Metadata.Kind, ShouldEqual, KindMetar)
		So(res.Metadata.Error, ShouldEqual, ErrNone)
		So(res.Groups, ShouldHaveLength, 9)

		wantParts := []ReportPart{
			PartHeader, PartHeader, PartHeader,
			PartMetar, PartMetar, PartMetar, PartMetar, PartMetar, PartMetar,
		}
		for i, want := range wantParts {
			So(res.Groups[i].Part, ShouldEqual, want)
		}

		wind, ok := res.Groups[3].Group.(*WindGroup)
		So(ok, ShouldBeTrue)
		So(wind.Direction.Degrees, ShouldEqual, 240)
		So(*wind.Speed.Value, ShouldEqual, 5)

		vis, ok := res.Groups[4].Group.(*VisibilityGroup)
		So(ok, ShouldBeTrue)
		So(*vis.Distance.Integer, ShouldEqual, 10000)
		So(vis.Distance.Modifier, ShouldEqual, ">")

		cloud, ok := res.Groups[5].Group.(*CloudGroup)
		So(ok, ShouldBeTrue)
		So(cloud.Amount, ShouldEqual, Few)
		So(*cloud.Base.Integer, ShouldEqual, 4000)

		temp, ok := res.Groups[6].Group.(*TemperatureGroup)
		So(ok, ShouldBeTrue)
		So(*temp.Temperature.Value, ShouldEqual, 25)
		So(*temp.DewPoint.Value, ShouldEqual, 18)

		pres, ok := res.Groups[7].Group.(*PressureGroup)
		So(ok, ShouldBeTrue)
		So(*pres.Pressure.Value, ShouldEqual, 1011)

		trend, ok := res.Groups[8].Group.(*TrendGroup)
		So(ok, ShouldBeTrue)
		So(trend.Kind, ShouldEqual, "NOSIG")
	})

	Convey("TAF with trends", t, func() {
		res := ExtendedParse("TAF ZZZZ 041115Z 0412/0512 24005KT 10SM FEW250 " +
			"PROB40 TEMPO 0420/0424 24010G15KT FM050300 BKN100 3SM RA BECMG 0506/0510 OVC050=")
		So(res.Metadata.Kind, ShouldEqual, KindTaf)
		So(res.Metadata.Error, ShouldEqual, ErrNone)

		var probTempo, from *TrendGroup
		for _, eg := range res.Groups {
			if tg, ok := eg.Group.(*TrendGroup); ok {
				switch tg.Kind {
				case "PROB40_TEMPO":
					probTempo = tg
				case "FROM":
					from = tg
				}
			}
		}
		So(probTempo, ShouldNotBeNil)
		So(*probTempo.From.Day, ShouldEqual, 4)
		So(probTempo.From.Hour, ShouldEqual, 20)
		So(*probTempo.Until.Day, ShouldEqual, 4)
		So(probTempo.Until.Hour, ShouldEqual, 24)

		So(from, ShouldNotBeNil)
		So(*from.From.Day, ShouldEqual, 5)
		So(from.From.Hour, ShouldEqual, 3)
		So(from.From.Minute, ShouldEqual, 0)
	})

	Convey("Re-parse back-edge", t, func() {
		res := Parse("ZZZZ 041115Z 24005KT 9999 FEW040 25/18 Q1011 NOSIG=")
		So(res.Metadata.Kind, ShouldEqual, KindMetar)
		So(res.Metadata.Error, ShouldEqual, ErrNone)
		So(res.Groups, ShouldHaveLength, 8)

		wind, ok := res.Groups[2].(*WindGroup)
		So(ok, ShouldBeTrue)
		So(wind.Direction.Degrees, ShouldEqual, 240)
	})

	Convey("Appended remark", t, func() {
		res := ExtendedParse("METAR LMML 092045Z 14004KT 9999 FEW020 25/21 Q1020 NOSIG RMK SMOKE TO NE=")
		last := res.Groups[len(res.Groups)-1]
		pt, ok := last.Group.(*PlainTextGroup)
		So(ok, ShouldBeTrue)
		So(pt.Text, ShouldEqual, "SMOKE TO NE")
		So(last.Part, ShouldEqual, PartRmk)
	})

	Convey("Structural error in body", t, func() {
		res := Parse("METAR ZZZZ 041115Z 24005KT 9999 NIL FEW040 25/18 Q1011 NOSIG=")
		So(res.Metadata.Error, ShouldEqual, ErrUnexpectedNilOrCnlInReportBody)
		So(res.Groups, ShouldHaveLength, 6)

		last, ok := res.Groups[5].(*KeywordGroup)
		So(ok, ShouldBeTrue)
		So(last.Word, ShouldEqual, "NIL")
	})

	Convey("SNINCR combining", t, func() {
		res := Parse("METAR ZZZZ 041115Z 24005KT 9999 FEW040 25/18 Q1011 RMK SNINCR 4/12=")
		var snincr *PrecipitationGroup
		for _, g := range res.Groups {
			if pg, ok := g.(*PrecipitationGroup); ok {
				snincr = pg
			}
		}
		So(snincr, ShouldNotBeNil)
		So(snincr.Kind, ShouldEqual, SnowIncreasingRapidly)
		So(*snincr.Recent.Value, ShouldEqual, 4)
		So(*snincr.Total.Value, ShouldEqual, 12)
	})
}
