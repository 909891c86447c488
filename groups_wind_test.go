package metaf

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/aerowx/metaf/direction"
)

func mustWind(t *testing.T, token string) *WindGroup {
	t.Helper()
	g, ok := parseWindGroup(token, PartMetar, &ReportMetadata{})
	if !ok {
		t.Fatalf("parseWindGroup(%q) did not match", token)
	}
	return g.(*WindGroup)
}

func TestWindGroupParseAndCombine(t *testing.T) {
	Convey("WindGroup parsing", t, func() {
		Convey("a plain wind group decodes direction, speed, and gust", func() {
			w := mustWind(t, "24010G15KT")
			So(w.Direction.Degrees, ShouldEqual, 240)
			So(*w.Speed.Value, ShouldEqual, 10)
			So(w.GustSpeed, ShouldNotBeNil)
			So(*w.GustSpeed.Value, ShouldEqual, 15)
		})

		Convey("VRB direction and calm wind are both recognized", func() {
			vrb := mustWind(t, "VRB02KT")
			So(vrb.Direction.Status, ShouldEqual, direction.Variable)

			calm := mustWind(t, "00000KT")
			So(calm.Calm, ShouldBeTrue)
		})

		Convey("a bare variable-direction token parses as variableOnly", func() {
			g, ok := parseWindGroup("210V270", PartMetar, &ReportMetadata{})
			So(ok, ShouldBeTrue)
			v := g.(*WindGroup)
			So(v.variableOnly, ShouldBeTrue)
			So(v.VariableFrom.Degrees, ShouldEqual, 210)
			So(v.VariableTo.Degrees, ShouldEqual, 270)
		})
	})

	Convey("WindGroup combine", t, func() {
		Convey("a wind group absorbs a following variable-direction token", func() {
			w := mustWind(t, "24008KT")
			vGroup, _ := parseWindGroup("210V270", PartMetar, &ReportMetadata{})
			cr, merged := w.Combine(vGroup)
			So(cr, ShouldEqual, Combined)
			mw := merged.(*WindGroup)
			So(mw.VariableFrom.Degrees, ShouldEqual, 210)
			So(mw.VariableTo.Degrees, ShouldEqual, 270)
		})

		Convey("a variable-direction-only group never itself combines further", func() {
			v, _ := parseWindGroup("210V270", PartMetar, &ReportMetadata{})
			vg := v.(*WindGroup)
			other, _ := parseWindGroup("24008KT", PartMetar, &ReportMetadata{})
			cr, _ := vg.Combine(other)
			So(cr, ShouldEqual, NotCombined)
		})

		Convey("a wind group with variable direction already set does not absorb again", func() {
			w := mustWind(t, "24008KT")
			firstV, _ := parseWindGroup("210V270", PartMetar, &ReportMetadata{})
			_, merged := w.Combine(firstV)
			mw := merged.(*WindGroup)

			secondV, _ := parseWindGroup("200V260", PartMetar, &ReportMetadata{})
			cr, _ := mw.Combine(secondV)
			So(cr, ShouldEqual, NotCombined)
		})
	})
}
