package engine

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/zoneinfo/internal/domain"
	"github.com/aalvaropc/zoneinfo/internal/infra/tzparse"
)

// Bind resolves the RULES column of a segment against the ruleset names in rules.
//
// "-" binds nothing. A name present in rules binds that ruleset. Any other name is
// read as a literal amount of saving; such a segment has no letter to offer, so a
// format needing one is rejected.
func Bind(seg domain.Segment, rules domain.Rules, z *domain.Zone) (domain.RuleBinding, error) {
	const op = "engine.bind"
	if seg.RuleName == "-" || seg.RuleName == "" {
		return domain.NoRules(), nil
	}
	if _, ok := rules.Lookup(seg.RuleName); ok {
		return domain.NamedRules(seg.RuleName), nil
	}

	save, err := tzparse.ParseHMS(seg.RuleName)
	if err != nil {
		return domain.RuleBinding{}, domain.FormatError(op, z.File, z.Line, seg.RuleName, "unknown ruleset in zone "+z.Name)
	}
	if strings.Contains(seg.Format, "%s") {
		return domain.RuleBinding{}, domain.FormatError(op, z.File, z.Line, seg.Format, "%s in ruleless zone "+z.Name)
	}
	return domain.FixedRules(save), nil
}

// Assemble returns a copy of z with every segment bound and its Start and End
// boundaries computed. Segments are processed in order: each start derives from the
// end of the previous one.
func Assemble(z *domain.Zone, rules domain.Rules) (*domain.Zone, error) {
	out := *z
	out.Segments = make([]domain.Segment, len(z.Segments))

	for i, seg := range z.Segments {
		b, err := Bind(seg, rules, z)
		if err != nil {
			return nil, err
		}
		seg.Binding = b
		ruleset := rules[b.Name]

		if i == 0 {
			seg.Start = domain.MinBoundary
			seg.StartLetter = standardLetter(ruleset)
		} else {
			prev := out.Segments[i-1].End
			var save time.Duration
			switch b.Kind {
			case domain.BindingFixed:
				save = b.Offset
			case domain.BindingNamed:
				seg.StartLetter = standardLetter(ruleset)
				if r := StartRule(ruleset, prev, seg.GmtOffset); r != nil {
					save, seg.StartLetter = r.Save, r.Letters()
				}
			}
			seg.Start = domain.BoundaryAtUTC(prev.UTC, seg.GmtOffset, save)
		}

		if seg.Until == nil {
			seg.End = domain.MaxBoundary
		} else {
			// Ruleless segments end in standard time by definition. A named
			// segment no rule fires in keeps the saving it started with.
			save := b.Offset
			if b.Kind == domain.BindingNamed {
				save = seg.Start.StandardOffset
				if r := LastRule(ruleset, *seg.Until, seg.Start, seg.GmtOffset, Before); r != nil {
					save = r.Save
				}
			}
			utc := seg.Until.ClockIn(seg.Until.Year, seg.GmtOffset, save, domain.FrameUTC)
			seg.End = domain.BoundaryAtUTC(utc, seg.GmtOffset, save)
		}

		out.Segments[i] = seg
	}
	return &out, nil
}

// StartRule returns the rule in force when a segment bound to rules starts at the
// end boundary prev of the segment before it, or nil when none has fired yet.
//
// A rule firing exactly at prev under the previous saving wins. Otherwise the
// latest activation at or before prev applies, in any year. A rule firing while
// the new wall clock still repeats readings of the previous segment also takes
// effect at the start, since its wall time does not move past prev.Local.
func StartRule(rules []*domain.RuleRecord, prev domain.Boundary, gmt time.Duration) *domain.RuleRecord {
	if r := RuleAt(rules, prev.UTC, gmt, prev.StandardOffset); r != nil {
		return r
	}

	r := LastRule(rules, domain.UntilAt(prev.UTC, domain.RefUniversal), domain.MinBoundary, gmt, AtOrBefore)
	var save time.Duration
	if r != nil {
		save = r.Save
	}
	start := domain.BoundaryAtUTC(prev.UTC, gmt, save)
	if start.Local.Before(prev.Local) {
		if w := LastRule(rules, domain.UntilAt(prev.Local, domain.RefWall), start, gmt, AtOrBefore); w != nil {
			return w
		}
	}
	return r
}

// standardLetter is the letter of the first rule without saving, used before any
// rule of the set has fired.
func standardLetter(rules []*domain.RuleRecord) string {
	for _, r := range rules {
		if r.Save == 0 {
			return r.Letters()
		}
	}
	return ""
}

// AssembleAll assembles zones concurrently. Zones only share the read-only rules.
// workers bounds the number of zones in flight; zero or less means no bound.
func AssembleAll(ctx context.Context, zones []*domain.Zone, rules domain.Rules, workers int) ([]*domain.Zone, error) {
	out := make([]*domain.Zone, len(zones))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, z := range zones {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			az, err := Assemble(z, rules)
			if err != nil {
				return err
			}
			out[i] = az
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
