// Package mtime decodes the day/hour/minute time representation used
// throughout METAR and TAF groups. There is no timezone beyond UTC and no
// wall-clock dependency: day is optional exactly as written on the wire.
package mtime

import (
	"strconv"

	"k8s.io/utils/ptr"
)

// Time is a day-of-month (optional) plus hour and minute, always UTC.
type Time struct {
	Day    *int
	Hour   int
	Minute int
}

// Valid reports whether the fields are individually in range. Day, when
// present, must be 1..31; Hour may be 0..24 (24 is the end-of-day form used
// by TAF validity spans); Minute must be 0..59.
func (t Time) Valid() bool {
	if t.Day != nil && (*t.Day < 1 || *t.Day > 31) {
		return false
	}
	if t.Hour > 24 {
		return false
	}
	return t.Minute <= 59
}

func strToUint(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FromDDHHMM decodes the full "DDHHMM" form (e.g. the report time and
// "FMDDHHMM" trend times). Returns ok=false if the string isn't six digits or
// any field fails validation.
func FromDDHHMM(s string) (Time, bool) {
	if len(s) != 6 {
		return Time{}, false
	}
	day, ok := strToUint(s[0:2])
	if !ok {
		return Time{}, false
	}
	hour, ok := strToUint(s[2:4])
	if !ok {
		return Time{}, false
	}
	minute, ok := strToUint(s[4:6])
	if !ok {
		return Time{}, false
	}
	t := Time{Day: ptr.To(day), Hour: hour, Minute: minute}
	if !t.Valid() {
		return Time{}, false
	}
	return t, true
}

// FromDDHH decodes the short "DDHH" form used by TAF time-span endpoints
// (minute is implicitly zero).
func FromDDHH(s string) (Time, bool) {
	if len(s) != 4 {
		return Time{}, false
	}
	day, ok := strToUint(s[0:2])
	if !ok {
		return Time{}, false
	}
	hour, ok := strToUint(s[2:4])
	if !ok {
		return Time{}, false
	}
	t := Time{Day: ptr.To(day), Hour: hour, Minute: 0}
	if !t.Valid() {
		return Time{}, false
	}
	return t, true
}

// FromHHMM decodes a dayless "HHMM" form (e.g. FM1445, TL2300, AT1530).
func FromHHMM(s string) (Time, bool) {
	if len(s) != 4 {
		return Time{}, false
	}
	hour, ok := strToUint(s[0:2])
	if !ok {
		return Time{}, false
	}
	minute, ok := strToUint(s[2:4])
	if !ok {
		return Time{}, false
	}
	t := Time{Hour: hour, Minute: minute}
	if !t.Valid() {
		return Time{}, false
	}
	return t, true
}

// After reports whether until is strictly after from, treating day wrap
// across a month boundary as "later" (e.g. from day 30 to day 01).
func After(from, until Time) bool {
	fd, ud := 0, 0
	if from.Day != nil {
		fd = *from.Day
	}
	if until.Day != nil {
		ud = *until.Day
	}
	fm := fd*24*60 + from.Hour*60 + from.Minute
	um := ud*24*60 + until.Hour*60 + until.Minute
	if ud < fd {
		// month wrap: until's day number is smaller than from's.
		um += 31 * 24 * 60
	}
	return um > fm
}
