package engine

import (
	"time"

	"github.com/aalvaropc/zoneinfo/internal/domain"
)

// SearchMode bounds the activations LastRule accepts.
type SearchMode uint8

const (
	// Before accepts activations strictly before the point.
	Before SearchMode = iota
	// AtOrBefore also accepts an activation at the point itself.
	AtOrBefore
)

func (m SearchMode) accepts(at, target time.Time) bool {
	if m == AtOrBefore {
		return !at.After(target)
	}
	return at.Before(target)
}

// frameOf is the frame activations are compared in for a point of reference ref.
func frameOf(ref domain.TimeReference) domain.Frame {
	if ref == domain.RefWall {
		return domain.FrameLocal
	}
	return domain.FrameUTC
}

// LastRule returns the rule of rules whose most recent activation at or after start
// is nearest before point, or nil when none fired in that interval. gmt is the base
// offset of the segment the rules are bound to.
//
// Rules are scanned from last to first and the first nearest candidate is kept, so a
// tie goes to the rule listed last.
func LastRule(rules []*domain.RuleRecord, point domain.Until, start domain.Boundary, gmt time.Duration, mode SearchMode) *domain.RuleRecord {
	frame := frameOf(point.AtRef)
	from := start.In(frame)
	target := point.ClockIn(point.Year, gmt, 0, frame)

	var (
		last     *domain.RuleRecord
		best     span
		bestYear = -1
	)

	for i := len(rules) - 1; i >= 0; i-- {
		r := rules[i]
		if r.To < bestYear {
			continue
		}

		var yref int
		if r.From == point.Year+1 && r.Month == time.January && point.Month == time.December && r.AtRef != point.AtRef {
			// A January activation of next year may precede a December point once
			// the frames are reconciled.
			yref = r.From
		} else {
			if r.From > point.Year {
				continue
			}
			yref = min(r.To, point.Year)

			if yref == point.Year && yref < r.To && r.AtRef != point.AtRef &&
				r.Month == time.January && point.Month == time.December {
				yref++
			}

			if yref == point.Year && r.AtRef == point.AtRef && firesLater(r.RuleDate, point.RuleDate) {
				if yref > r.From {
					yref--
				} else {
					continue
				}
			}
		}

		for ; yref >= r.From; yref-- {
			if !domain.IsYearType(yref, r.Type) {
				continue
			}

			var at time.Time
			if (r.AtRef == domain.RefWall) != (frame == domain.FrameLocal) {
				save := SaveBefore(yref, rules, r, start, gmt)
				at = r.ClockIn(yref, gmt, save, frame)
			} else {
				at = r.ClockIn(yref, gmt, 0, frame)
			}

			if at.After(target) && at.Year() > r.From {
				continue
			}

			if !at.Before(from) && mode.accepts(at, target) {
				d := between(target, at)
				if last == nil || d.less(best) {
					last, best, bestYear = r, d, at.Year()
				}
			}
			break
		}
	}
	return last
}

// firesLater reports whether a fires after b within the same year, judged on the
// calendar fields only. Weekday selectors compare by month alone.
func firesLater(a, b domain.RuleDate) bool {
	if a.Month != b.Month {
		return a.Month > b.Month
	}
	return a.Day.Kind == domain.DayOfMonth && b.Day.Kind == domain.DayOfMonth && a.Day.Day > b.Day.Day
}

// SaveBefore returns the daylight saving in force just before rule fires in year,
// considering only the other rules that fired at or after the segment start. It
// defaults to the start's standard offset. It never recurses into LastRule.
func SaveBefore(year int, rules []*domain.RuleRecord, rule *domain.RuleRecord, start domain.Boundary, gmt time.Duration) time.Duration {
	save := start.StandardOffset

	var (
		best     span
		found    bool
		bestYear = -1
	)

	for i := len(rules) - 1; i >= 0; i-- {
		o := rules[i]
		if o == rule {
			continue
		}
		if o.From > year || o.To < bestYear {
			continue
		}

		yref := min(o.To, year)
		if yref == year && o.AtRef == rule.AtRef && firesLater(o.RuleDate, rule.RuleDate) {
			if yref > o.From {
				yref--
			} else {
				continue
			}
		}

		for ; yref >= o.From; yref-- {
			if !domain.IsYearType(yref, o.Type) {
				continue
			}

			frame := domain.FrameUTC
			if o.AtRef == domain.RefWall {
				frame = domain.FrameLocal
			}
			prev := o.ClockIn(yref, gmt, 0, frame)
			if start.In(frame).After(prev) {
				break
			}
			cur := rule.ClockIn(year, gmt, o.Save, frame)

			if prev.After(cur) {
				continue
			}
			d := between(cur, prev)
			if !found || d.less(best) {
				save, best, found, bestYear = o.Save, d, true, prev.Year()
			}
			break
		}
	}
	return save
}

// RuleAt returns the rule whose activation in UTC equals utc exactly, searching the
// years around utc. std is the daylight saving assumed in force before the activation.
func RuleAt(rules []*domain.RuleRecord, utc time.Time, gmt, std time.Duration) *domain.RuleRecord {
	y := utc.Year()
	for i := len(rules) - 1; i >= 0; i-- {
		r := rules[i]

		var yref int
		if r.From == y+1 && r.Month == time.January && utc.Month() == time.December && r.AtRef != domain.RefUniversal {
			yref = r.From
		} else {
			if r.From > y {
				continue
			}
			yref = min(r.To, y)
			if yref < r.To && r.AtRef != domain.RefUniversal && r.Month == time.January && utc.Month() == time.December {
				yref++
			}
			if yref < y-1 {
				continue
			}
		}

		for ; yref >= r.From; yref-- {
			if !domain.IsYearType(yref, r.Type) {
				continue
			}
			if yref < y-1 {
				break
			}
			if r.ClockIn(yref, gmt, std, domain.FrameUTC).Equal(utc) {
				return r
			}
		}
	}
	return nil
}
