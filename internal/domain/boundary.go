package domain

import "time"

// Boundary is an instant where a zone segment starts or ends, stamped in both frames
// together with the offsets in force there.
type Boundary struct {
	UTC            time.Time
	Local          time.Time
	GmtOffset      time.Duration
	StandardOffset time.Duration
}

var (
	// MinBoundary starts the first segment of every zone.
	MinBoundary = Boundary{
		UTC:   time.Date(MinYear, time.January, 1, 0, 0, 0, 0, time.UTC),
		Local: time.Date(MinYear, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	// MaxBoundary ends the last segment of every zone.
	MaxBoundary = Boundary{
		UTC:   time.Date(MaxYear, time.December, 31, 23, 59, 59, 999_000_000, time.UTC),
		Local: time.Date(MaxYear, time.December, 31, 23, 59, 59, 999_000_000, time.UTC),
	}
)

// BoundaryAtUTC derives the local reading of a UTC clock.
func BoundaryAtUTC(utc time.Time, gmt, save time.Duration) Boundary {
	return Boundary{UTC: utc, Local: Shift(utc, gmt, save, FrameLocal), GmtOffset: gmt, StandardOffset: save}
}

// BoundaryAtLocal derives the UTC reading of a local clock.
func BoundaryAtLocal(local time.Time, gmt, save time.Duration) Boundary {
	return Boundary{UTC: Shift(local, gmt, save, FrameUTC), Local: local, GmtOffset: gmt, StandardOffset: save}
}

// In returns the reading of the boundary in frame.
func (b Boundary) In(frame Frame) time.Time {
	if frame == FrameLocal {
		return b.Local
	}
	return b.UTC
}

// Before reports whether b precedes o on both timelines.
func (b Boundary) Before(o Boundary) bool {
	return b.UTC.Before(o.UTC) && b.Local.Before(o.Local)
}

// After reports whether b follows o on both timelines.
func (b Boundary) After(o Boundary) bool {
	return b.UTC.After(o.UTC) && b.Local.After(o.Local)
}

// AtOrBefore reports whether b does not follow o on either timeline.
func (b Boundary) AtOrBefore(o Boundary) bool {
	return !b.UTC.After(o.UTC) && !b.Local.After(o.Local)
}

// Offset is the total offset from UTC in force at the boundary.
func (b Boundary) Offset() time.Duration { return b.GmtOffset + b.StandardOffset }
