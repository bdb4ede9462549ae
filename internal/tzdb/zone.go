package tzdb

import (
	"fmt"
	"time"

	"github.com/aalvaropc/zoneinfo/internal/domain"
	"github.com/aalvaropc/zoneinfo/internal/engine"
)

// Zone is an assembled zone of a Database.
type Zone struct {
	name        string
	segments    []domain.Segment
	rules       domain.Rules
	coordinates string
	comment     string

	cache transitionCache
}

func newZone(z *domain.Zone, rules domain.Rules) *Zone {
	return &Zone{
		name:        z.Name,
		segments:    z.Segments,
		rules:       rules,
		coordinates: z.Coordinates,
		comment:     z.Comment,
		cache:       transitionCache{years: map[int][]domain.Boundary{}},
	}
}

// Name is the canonical zone name, such as Europe/Paris.
func (z *Zone) Name() string { return z.name }

// Coordinates is the ISO 6709 position from the zone table, or empty.
func (z *Zone) Coordinates() string { return z.coordinates }

// Comment is the zone table comment, or empty.
func (z *Zone) Comment() string { return z.comment }

// Segments returns a copy of the zone lines with their boundaries.
func (z *Zone) Segments() []domain.Segment {
	out := make([]domain.Segment, len(z.segments))
	copy(out, z.segments)
	return out
}

func (z *Zone) String() string { return z.name }

// resolved is the segment and daylight saving governing an instant.
type resolved struct {
	seg    *domain.Segment
	save   time.Duration
	letter string
}

func (r resolved) offset() time.Duration { return r.seg.GmtOffset + r.save }

// resolve finds the segment containing i in its own frame, newest first, and the
// rule in force at i within that segment.
func (z *Zone) resolve(op string, i domain.Instant) (resolved, error) {
	frame := i.Frame()
	clock := i.Clock()

	ref := domain.RefUniversal
	if frame == domain.FrameLocal {
		ref = domain.RefWall
	}
	at := domain.UntilAt(clock, ref)

	for k := len(z.segments) - 1; k >= 0; k-- {
		seg := &z.segments[k]
		if clock.Before(seg.Start.In(frame)) || !clock.Before(seg.End.In(frame)) {
			continue
		}

		switch seg.Binding.Kind {
		case domain.BindingNone:
			return resolved{seg: seg}, nil
		case domain.BindingFixed:
			return resolved{seg: seg, save: seg.Binding.Offset}, nil
		}

		r := engine.LastRule(z.rules[seg.Binding.Name], at, seg.Start, seg.GmtOffset, engine.AtOrBefore)
		if r == nil {
			return resolved{seg: seg, save: seg.Start.StandardOffset, letter: seg.StartLetter}, nil
		}
		return resolved{seg: seg, save: r.Save, letter: r.Letters()}, nil
	}
	return resolved{}, &domain.OpError{Op: op, Kind: domain.KindRange, Err: fmt.Errorf("%s is not covered by zone %s", i, z.name)}
}

// ToLocalTime converts a UTC instant to the wall clock of the zone. With optimize the
// offsets come from the transition cache of the instant's year when it holds a
// transition after the instant.
func (z *Zone) ToLocalTime(i domain.Instant, optimize bool) (domain.Instant, error) {
	const op = "tzdb.to_local_time"
	if i.Frame() != domain.FrameUTC {
		return domain.Instant{}, domain.ConfigurationError(op, "instant must be in UTC, got "+i.Frame().String())
	}

	if optimize {
		for _, b := range z.transitions(i.Year()) {
			if i.Clock().Before(b.UTC) {
				return domain.ClockIn(i.Clock().Add(b.Offset()), domain.FrameLocal), nil
			}
		}
	}

	r, err := z.resolve(op, i)
	if err != nil {
		return domain.Instant{}, err
	}
	return domain.ClockIn(i.Clock().Add(r.offset()), domain.FrameLocal), nil
}

// ToUniversalTime converts a wall clock reading of the zone to UTC. A reading that
// no segment covers locally, such as a skipped calendar day, is a range error.
func (z *Zone) ToUniversalTime(i domain.Instant, optimize bool) (domain.Instant, error) {
	const op = "tzdb.to_universal_time"
	if i.Frame() != domain.FrameLocal {
		return domain.Instant{}, domain.ConfigurationError(op, "instant must be local, got "+i.Frame().String())
	}
	if !z.coversLocal(i.Clock()) {
		return domain.Instant{}, &domain.OpError{Op: op, Kind: domain.KindRange, Err: fmt.Errorf("local time %s does not exist in zone %s", i, z.name)}
	}

	if optimize {
		if b, ok := z.cachedLocal(i.Clock()); ok {
			return domain.ClockIn(i.Clock().Add(-b.Offset()), domain.FrameUTC), nil
		}
	}

	r, err := z.resolve(op, i)
	if err != nil {
		return domain.Instant{}, err
	}
	return domain.ClockIn(i.Clock().Add(-r.offset()), domain.FrameUTC), nil
}

// cachedLocal returns the cached boundary whose preceding offsets govern a local
// reading. A reading the cache cannot place unambiguously, because the wall clock
// repeats or skips around it or its neighbours fall outside the cached year, is
// left to the rule search.
func (z *Zone) cachedLocal(clock time.Time) (domain.Boundary, bool) {
	list := z.transitions(clock.Year())
	for k, b := range list {
		if !clock.Before(b.Local) {
			continue
		}
		if k == 0 || k == len(list)-1 {
			return domain.Boundary{}, false
		}
		from := list[k-1].UTC.Add(b.Offset())
		until := b.UTC.Add(list[k+1].Offset())
		if clock.Before(from) || !clock.Before(until) {
			return domain.Boundary{}, false
		}
		return b, true
	}
	return domain.Boundary{}, false
}

func (z *Zone) coversLocal(clock time.Time) bool {
	for k := range z.segments {
		seg := &z.segments[k]
		if !clock.Before(seg.Start.Local) && clock.Before(seg.End.Local) {
			return true
		}
	}
	return false
}

// ToTimeZone returns the wall clock of target at the instant i. A local i is read
// as a wall clock of z.
func (z *Zone) ToTimeZone(i domain.Instant, target *Zone) (domain.Instant, error) {
	const op = "tzdb.to_time_zone"
	if target == nil {
		return domain.Instant{}, domain.ConfigurationError(op, "nil target zone")
	}
	switch i.Frame() {
	case domain.FrameUTC:
		return target.ToLocalTime(i, false)
	case domain.FrameLocal:
		u, err := z.ToUniversalTime(i, false)
		if err != nil {
			return domain.Instant{}, err
		}
		return target.ToLocalTime(u, false)
	}
	return domain.Instant{}, domain.ConfigurationError(op, "unspecified time reference")
}

func (z *Zone) universal(op string, i domain.Instant) (time.Time, error) {
	switch i.Frame() {
	case domain.FrameUTC:
		return i.Clock(), nil
	case domain.FrameLocal:
		u, err := z.ToUniversalTime(i, false)
		if err != nil {
			return time.Time{}, err
		}
		return u.Clock(), nil
	}
	return time.Time{}, domain.ConfigurationError(op, "unspecified time reference")
}

// ToUnixSeconds returns the seconds elapsed since 1970-01-01T00:00:00Z.
func (z *Zone) ToUnixSeconds(i domain.Instant) (int64, error) {
	u, err := z.universal("tzdb.to_unix_seconds", i)
	if err != nil {
		return 0, err
	}
	return u.Unix(), nil
}

// ToUnixMilliseconds returns the milliseconds elapsed since 1970-01-01T00:00:00Z.
func (z *Zone) ToUnixMilliseconds(i domain.Instant) (int64, error) {
	u, err := z.universal("tzdb.to_unix_milliseconds", i)
	if err != nil {
		return 0, err
	}
	return u.UnixMilli(), nil
}

// Offset returns the total offset from UTC in force at i.
func (z *Zone) Offset(i domain.Instant) (time.Duration, error) {
	const op = "tzdb.offset"
	if i.Frame() == domain.FrameUnspecified {
		return 0, domain.ConfigurationError(op, "unspecified time reference")
	}
	r, err := z.resolve(op, i)
	if err != nil {
		return 0, err
	}
	return r.offset(), nil
}

// Abbreviation returns the time zone abbreviation in force at i, such as CEST.
func (z *Zone) Abbreviation(i domain.Instant) (string, error) {
	const op = "tzdb.abbreviation"
	if i.Frame() == domain.FrameUnspecified {
		return "", domain.ConfigurationError(op, "unspecified time reference")
	}
	r, err := z.resolve(op, i)
	if err != nil {
		return "", err
	}
	return r.seg.Abbreviation(r.letter, r.save), nil
}
