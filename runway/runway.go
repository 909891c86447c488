// Package runway decodes the runway identifier shared by wind shear, runway
// visual range, and runway state groups.
package runway

import (
	"regexp"
	"strconv"
)

// Designator is the parallel-runway qualifier.
type Designator string

const (
	// None means no parallel-runway qualifier.
	None Designator = ""
	// Left runway.
	Left Designator = "L"
	// Center runway.
	Center Designator = "C"
	// Right runway.
	Right Designator = "R"
)

// All and MessageRepetition are the two sentinel runway numbers: 88 stands
// for "all runways", 99 for "second half of message is a repetition of the
// first" (used by some runway state groups).
const (
	All               = 88
	MessageRepetition = 99
)

// Runway is a runway number (0..36, or one of the two sentinels above) plus
// an optional parallel-runway designator.
type Runway struct {
	Number     int
	Designator Designator
}

var rx = regexp.MustCompile(`^R(?:WY)?(\d{2})([LCR])?$`)

// From decodes "Rdd[L|C|R]" or "RWYdd[L|C|R]". Returns ok=false if the token
// doesn't match or the number is out of the legal range.
func From(s string) (Runway, bool) {
	m := rx.FindStringSubmatch(s)
	if m == nil {
		return Runway{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return Runway{}, false
	}
	if n > 36 && n != All && n != MessageRepetition {
		return Runway{}, false
	}
	return Runway{Number: n, Designator: Designator(m[2])}, true
}

// Valid mirrors the original's Runway::isValid: any number 0-36 is valid
// with any designator, but the two sentinel numbers are only valid bare
// (no parallel-runway designator).
func (r Runway) Valid() bool {
	if r.Number <= 36 {
		return true
	}
	return (r.Number == All || r.Number == MessageRepetition) && r.Designator == None
}

// IsAllRunways reports whether this is the sentinel "all runways" number.
func (r Runway) IsAllRunways() bool { return r.Number == All }

// IsMessageRepetition reports whether this is the sentinel "message
// repetition" number.
func (r Runway) IsMessageRepetition() bool { return r.Number == MessageRepetition }
