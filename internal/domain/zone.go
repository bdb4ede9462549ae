package domain

import (
	"strings"
	"time"
)

// Until is the UNTIL column of a zone line: a rule date with an explicit year.
type Until struct {
	Year int
	RuleDate
}

// Clock returns the until date as a plain clock reading.
func (u Until) Clock() time.Time { return u.RuleDate.Clock(u.Year) }

// UntilAt is the point of a clock reading on the given reference.
func UntilAt(clock time.Time, ref TimeReference) Until {
	y, m, d := clock.Date()
	return Until{
		Year: y,
		RuleDate: RuleDate{
			Month: m,
			Day:   DayOfRule{Kind: DayOfMonth, Weekday: clock.Weekday(), Day: d},
			At:    clock.Sub(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)),
			AtRef: ref,
		},
	}
}

// Segment is one line of a zone: the offsets and rules in force until Until.
type Segment struct {
	GmtOffset time.Duration
	// RuleName is the raw RULES column; Binding is its resolved form.
	RuleName string
	Binding  RuleBinding
	Format   string
	Until    *Until

	// Start and End are filled in by the assembler. StartLetter is the letter of
	// the rule in force at Start, for readings no later rule of the segment covers.
	Start       Boundary
	End         Boundary
	StartLetter string
}

// Abbreviation renders the FORMAT column for a rule letter and the save in force.
//
// "%s" takes the letter, "%z" the numeric offset, and a "STD/DST" pair picks its
// side from whether any saving applies.
func (s *Segment) Abbreviation(letter string, save time.Duration) string {
	f := s.Format
	if i := strings.IndexByte(f, '/'); i >= 0 {
		if save == 0 {
			f = f[:i]
		} else {
			f = f[i+1:]
		}
	}
	if letter == "-" {
		letter = ""
	}
	f = strings.ReplaceAll(f, "%s", letter)
	if strings.Contains(f, "%z") {
		f = strings.ReplaceAll(f, "%z", numericAbbreviation(s.GmtOffset+save))
	}
	return f
}

// numericAbbreviation follows zic's %z: +HH, +HHMM or +HHMMSS as needed.
func numericAbbreviation(d time.Duration) string {
	s := FormatOffset(d)
	s = strings.ReplaceAll(s, ":", "")
	for strings.HasSuffix(s, "00") && len(s) > 3 {
		s = s[:len(s)-2]
	}
	return s
}

// Zone is a named sequence of segments in chronological order.
type Zone struct {
	Name     string
	Segments []Segment

	// Coordinates and Comment come from the zone table, when present.
	Coordinates string
	Comment     string

	File string
	Line int
}

// Link is an alias for a zone name. Links are followed once.
type Link struct {
	Alias  string
	Target string
}
