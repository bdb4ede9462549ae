package domain

import "time"

// TimeReference is the clock an AT or UNTIL time of day is read on.
type TimeReference uint8

const (
	// RefWall is local wall clock time (suffix w, the default).
	RefWall TimeReference = iota
	// RefStandard is local standard time, without daylight saving (suffix s).
	RefStandard
	// RefUniversal is UTC (suffix u, g or z).
	RefUniversal
)

func (r TimeReference) String() string {
	switch r {
	case RefStandard:
		return "standard"
	case RefUniversal:
		return "universal"
	default:
		return "wall"
	}
}

// DayKind selects how DayOfRule positions a day in its month.
type DayKind uint8

const (
	DayOfMonth        DayKind = iota // 5
	WeekdayOnOrAfter                 // Sun>=8
	WeekdayOnOrBefore                // Sun<=25, lastSun
)

// LastDay is the Day of a lastDOW selector.
const LastDay = -1

// DayOfRule is the ON field of a rule line (or the day of an UNTIL).
type DayOfRule struct {
	Kind    DayKind
	Weekday time.Weekday // ignored for DayOfMonth
	Day     int          // day of month, or LastDay
}

// RuleDate is a month, day and time of day without a year.
type RuleDate struct {
	Month time.Month
	Day   DayOfRule
	At    time.Duration
	AtRef TimeReference
}

// Clock returns the rule date in year as a plain clock reading, before any frame shift.
func (rd RuleDate) Clock(year int) time.Time {
	var d time.Time
	switch rd.Day.Kind {
	case WeekdayOnOrBefore:
		last := DaysIn(rd.Month, year)
		day := last
		if rd.Day.Day != LastDay && rd.Day.Day < last {
			day = rd.Day.Day
		}
		d = time.Date(year, rd.Month, day, 0, 0, 0, 0, time.UTC)
		for d.Weekday() != rd.Day.Weekday {
			d = d.AddDate(0, 0, -1)
		}
	case WeekdayOnOrAfter:
		d = time.Date(year, rd.Month, rd.Day.Day, 0, 0, 0, 0, time.UTC)
		for d.Weekday() != rd.Day.Weekday {
			d = d.AddDate(0, 0, 1)
		}
	default:
		d = time.Date(year, rd.Month, rd.Day.Day, 0, 0, 0, 0, time.UTC)
	}
	return d.Add(rd.At)
}

// ClockIn returns the rule date in year read in frame, for a zone whose base offset
// is gmt and whose daylight saving in force is save.
func (rd RuleDate) ClockIn(year int, gmt, save time.Duration, frame Frame) time.Time {
	c := rd.Clock(year)
	if frame == FrameLocal {
		switch rd.AtRef {
		case RefStandard:
			return c.Add(save)
		case RefUniversal:
			return c.Add(gmt + save)
		}
		return c
	}
	switch rd.AtRef {
	case RefStandard:
		return c.Add(-gmt)
	case RefWall:
		return c.Add(-(save + gmt))
	}
	return c
}

// DaysIn returns the number of days of month in year.
func DaysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Shift converts a clock between frames given the offsets in force.
func Shift(clock time.Time, gmt, save time.Duration, to Frame) time.Time {
	if to == FrameLocal {
		return clock.Add(gmt + save)
	}
	return clock.Add(-(gmt + save))
}
