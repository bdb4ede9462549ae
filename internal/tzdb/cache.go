package tzdb

import (
	"slices"
	"sync"

	"github.com/aalvaropc/zoneinfo/internal/domain"
	"github.com/aalvaropc/zoneinfo/internal/engine"
)

// transitionCache holds, per year, the boundaries where the offsets of a zone change.
// Each boundary carries the offsets in force just before it. Years are filled on first
// use and never change afterwards.
type transitionCache struct {
	mu    sync.Mutex
	years map[int][]domain.Boundary
}

type utcKey struct {
	sec  int64
	nsec int
}

// transitions returns the cached boundaries of year, computing them under the lock
// when missing. The returned slice must not be modified.
func (z *Zone) transitions(year int) []domain.Boundary {
	z.cache.mu.Lock()
	defer z.cache.mu.Unlock()

	if list, ok := z.cache.years[year]; ok {
		return list
	}
	list := z.computeTransitions(year)
	z.cache.years[year] = list
	return list
}

// computeTransitions collects the rule activations of year-1 to year+1 that fall
// inside their segment, and the segment ends that fall in year.
func (z *Zone) computeTransitions(year int) []domain.Boundary {
	seen := map[utcKey]bool{}
	var out []domain.Boundary
	add := func(b domain.Boundary) {
		k := utcKey{b.UTC.Unix(), b.UTC.Nanosecond()}
		if seen[k] {
			return
		}
		seen[k] = true
		out = append(out, b)
	}

	for k := len(z.segments) - 1; k >= 0; k-- {
		seg := &z.segments[k]
		if seg.Binding.Kind != domain.BindingNamed {
			continue
		}
		inUTC := seg.Start.UTC.Year() <= year && seg.End.UTC.Year() >= year
		inLocal := seg.Start.Local.Year() <= year && seg.End.Local.Year() >= year
		if !inUTC && !inLocal {
			continue
		}

		rules := z.rules[seg.Binding.Name]
		for _, r := range rules {
			for y := year - 1; y <= year+1; y++ {
				if r.From > y || r.To < y || !domain.IsYearType(y, r.Type) {
					continue
				}
				save := engine.SaveBefore(y, rules, r, seg.Start, seg.GmtOffset)
				b := domain.Boundary{
					UTC:            r.ClockIn(y, seg.GmtOffset, save, domain.FrameUTC),
					Local:          r.ClockIn(y, seg.GmtOffset, save, domain.FrameLocal),
					GmtOffset:      seg.GmtOffset,
					StandardOffset: save,
				}
				if b.After(seg.Start) && b.AtOrBefore(seg.End) {
					add(b)
				}
			}
		}
	}

	for k := len(z.segments) - 1; k >= 0; k-- {
		end := z.segments[k].End
		if end.UTC.Year() == year || end.Local.Year() == year {
			add(end)
		}
	}

	slices.SortFunc(out, func(a, b domain.Boundary) int { return a.UTC.Compare(b.UTC) })
	return out
}

// Transitions returns the boundaries the zone's offsets change at around year, each
// carrying the offsets in force before it.
func (z *Zone) Transitions(year int) []domain.Boundary {
	return slices.Clone(z.transitions(year))
}
