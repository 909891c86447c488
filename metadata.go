package metaf

import "github.com/aerowx/metaf/mtime"

// MetafTime is the day/hour/minute time value shared by report groups.
type MetafTime = mtime.Time

// ReportMetadata is the per-report information accumulated as groups are
// accepted, plus the terminal parse error.
type ReportMetadata struct {
	Kind  ReportKind
	Error ErrorKind

	Station *string

	ReportTime    *MetafTime
	TimeSpanFrom  *MetafTime
	TimeSpanUntil *MetafTime

	IsSpeci   bool
	IsNoSpeci bool

	IsAutomated bool
	IsAO1       bool
	IsAO1A      bool
	IsAO2       bool
	IsAO2A      bool

	IsNil          bool
	IsCancelled    bool
	IsAmended      bool
	IsCorrectional bool

	MaintenanceIndicator bool

	CorrectionNumber uint32
}
