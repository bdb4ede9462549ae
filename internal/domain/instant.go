package domain

import "time"

// Frame is the time reference an Instant is expressed in.
type Frame uint8

const (
	FrameUnspecified Frame = iota
	FrameUTC
	FrameLocal
)

func (f Frame) String() string {
	switch f {
	case FrameUTC:
		return "utc"
	case FrameLocal:
		return "local"
	default:
		return "unspecified"
	}
}

// Instant is a clock reading tagged with the frame it was read in.
//
// The clock is always stored in time.UTC so that two readings compare by their
// calendar fields only; the frame says whether those fields are universal time or
// the wall clock of some zone. The zero value has an unspecified frame.
type Instant struct {
	clock time.Time
	frame Frame
}

// UTC returns the instant t expressed in universal time.
func UTC(t time.Time) Instant {
	return Instant{clock: t.UTC(), frame: FrameUTC}
}

// Local returns the wall clock reading of t, ignoring its location.
func Local(t time.Time) Instant {
	return Instant{clock: naive(t), frame: FrameLocal}
}

// Unspecified returns the clock reading of t without a frame. Conversions reject it.
func Unspecified(t time.Time) Instant {
	return Instant{clock: naive(t), frame: FrameUnspecified}
}

// Date builds an instant from calendar fields.
func Date(year int, month time.Month, day, hour, min, sec, nsec int, frame Frame) Instant {
	return Instant{clock: time.Date(year, month, day, hour, min, sec, nsec, time.UTC), frame: frame}
}

// ClockIn tags a UTC-located clock with a frame. Callers must pass a clock built in time.UTC.
func ClockIn(clock time.Time, frame Frame) Instant {
	return Instant{clock: clock, frame: frame}
}

func naive(t time.Time) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return time.Date(y, m, d, hh, mm, ss, t.Nanosecond(), time.UTC)
}

func (i Instant) Frame() Frame { return i.frame }

// Clock returns the calendar reading, located in time.UTC whatever the frame.
func (i Instant) Clock() time.Time { return i.clock }

func (i Instant) IsZero() bool { return i.clock.IsZero() }

func (i Instant) Add(d time.Duration) Instant {
	return Instant{clock: i.clock.Add(d), frame: i.frame}
}

func (i Instant) Sub(o Instant) time.Duration { return i.clock.Sub(o.clock) }

func (i Instant) Before(o Instant) bool { return i.clock.Before(o.clock) }

func (i Instant) After(o Instant) bool { return i.clock.After(o.clock) }

// Equal reports whether both the clock and the frame match.
func (i Instant) Equal(o Instant) bool {
	return i.frame == o.frame && i.clock.Equal(o.clock)
}

func (i Instant) Year() int { return i.clock.Year() }

func (i Instant) Month() time.Month { return i.clock.Month() }

func (i Instant) Day() int { return i.clock.Day() }

func (i Instant) Weekday() time.Weekday { return i.clock.Weekday() }

// TimeOfDay is the elapsed time since midnight of the clock's day.
func (i Instant) TimeOfDay() time.Duration {
	y, m, d := i.clock.Date()
	return i.clock.Sub(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

const instantLayout = "2006-01-02T15:04:05.999999999"

func (i Instant) String() string {
	s := i.clock.Format(instantLayout)
	if i.frame == FrameUTC {
		s += "Z"
	}
	return s
}
