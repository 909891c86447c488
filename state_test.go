package metaf

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTransition(t *testing.T) {
	Convey("Syntax state machine", t, func() {
		Convey("report type keyword selects the report kind", func() {
			var meta ReportMetadata
			next := transition(stateReportTypeOrLocation, ClassMetarKeyword, &meta)
			So(next, ShouldEqual, stateCorrection)
			So(meta.Kind, ShouldEqual, KindMetar)
		})

		Convey("a bare location with no METAR/TAF keyword stays unresolved", func() {
			var meta ReportMetadata
			next := transition(stateReportTypeOrLocation, ClassLocation, &meta)
			So(next, ShouldEqual, stateReportTime)
			So(meta.Kind, ShouldEqual, KindUnknown)
		})

		Convey("an unresolved report becomes METAR and repeats the current token once a body class appears", func() {
			meta := ReportMetadata{Kind: KindUnknown}
			next := transition(stateTimeSpan, ClassOther, &meta)
			So(next, ShouldEqual, stateReportBodyBeginMetarRepeatParse)
			So(meta.Kind, ShouldEqual, KindMetar)
		})

		Convey("a time span resolves an unresolved report to TAF", func() {
			meta := ReportMetadata{Kind: KindUnknown}
			next := transition(stateTimeSpan, ClassTimeSpan, &meta)
			So(next, ShouldEqual, stateReportBodyBeginTaf)
			So(meta.Kind, ShouldEqual, KindTaf)
		})

		Convey("AMD is only legal for TAF", func() {
			meta := ReportMetadata{Kind: KindMetar}
			next := transition(stateCorrection, ClassAmd, &meta)
			So(next, ShouldEqual, stateError)
			So(meta.Error, ShouldEqual, ErrAmdAllowedInTafOnly)
		})

		Convey("AMD is legal for TAF", func() {
			meta := ReportMetadata{Kind: KindTaf}
			next := transition(stateCorrection, ClassAmd, &meta)
			So(next, ShouldEqual, stateLocation)
			So(meta.Error, ShouldEqual, ErrNone)
		})

		Convey("CNL is only legal for TAF body", func() {
			meta := ReportMetadata{Kind: KindMetar}
			next := transition(stateReportBodyBeginMetar, ClassCnl, &meta)
			So(next, ShouldEqual, stateError)
			So(meta.Error, ShouldEqual, ErrCnlAllowedInTafOnly)
		})

		Convey("the maintenance indicator terminates a METAR report", func() {
			var meta ReportMetadata
			next := transition(stateRemarkMetar, ClassMaintenance, &meta)
			So(next, ShouldEqual, stateMaintenanceIndicator)

			next = transition(next, ClassOther, &meta)
			So(next, ShouldEqual, stateError)
			So(meta.Error, ShouldEqual, ErrUnexpectedGroupAfterMaintenanceIndicator)
		})

		Convey("the maintenance indicator is not legal in TAF", func() {
			var meta ReportMetadata
			next := transition(stateRemarkTaf, ClassMaintenance, &meta)
			So(next, ShouldEqual, stateError)
			So(meta.Error, ShouldEqual, ErrMaintenanceIndicatorAllowedInMetarOnly)
		})

		Convey("NIL terminates the header before a time span is read", func() {
			var meta ReportMetadata
			next := transition(stateReportTime, ClassNil, &meta)
			So(next, ShouldEqual, stateNil)

			next = transition(next, ClassOther, &meta)
			So(next, ShouldEqual, stateError)
			So(meta.Error, ShouldEqual, ErrUnexpectedGroupAfterNil)
		})
	})

	Convey("Terminal error inference", t, func() {
		Convey("an empty report is its own distinct error", func() {
			So(terminalError(stateReportTypeOrLocation, ErrNone), ShouldEqual, ErrEmptyReport)
		})
		Convey("running out of tokens mid-header is an unexpected end", func() {
			So(terminalError(stateReportTime, ErrNone), ShouldEqual, ErrUnexpectedReportEnd)
		})
		Convey("running out of tokens in the body is not an error", func() {
			So(terminalError(stateReportBodyMetar, ErrNone), ShouldEqual, ErrNone)
		})
	})
}
