package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/aalvaropc/zoneinfo/internal/ports"
	"github.com/aalvaropc/zoneinfo/internal/tzdb"
)

// ValidationReport summarises a record source that assembled without errors.
// Problems are inconsistencies that do not prevent conversions.
type ValidationReport struct {
	Zones     int      `json:"zones" yaml:"zones"`
	Links     int      `json:"links" yaml:"links"`
	Rulesets  int      `json:"rulesets" yaml:"rulesets"`
	Countries int      `json:"countries" yaml:"countries"`
	Problems  []string `json:"problems,omitempty" yaml:"problems,omitempty"`
}

type Validate struct {
	loader  ports.DatasetLoader
	workers int
}

func NewValidate(loader ports.DatasetLoader, workers int) *Validate {
	return &Validate{loader: loader, workers: workers}
}

// Execute parses and assembles every zone of the source, then cross-checks links,
// tables and rulesets.
func (uc *Validate) Execute(ctx context.Context) (ValidationReport, error) {
	ds, err := uc.loader.Load(ctx)
	if err != nil {
		return ValidationReport{}, err
	}
	db, err := tzdb.New(ctx, ds, tzdb.WithWorkers(uc.workers))
	if err != nil {
		return ValidationReport{}, err
	}

	rep := ValidationReport{
		Zones:     len(db.ZoneNames()),
		Links:     len(db.Links()),
		Rulesets:  len(ds.Rules),
		Countries: len(db.Countries()),
	}

	known := map[string]bool{}
	for _, n := range db.ZoneNames() {
		known[n] = true
	}
	for _, l := range db.Links() {
		if !known[l.Target] {
			rep.Problems = append(rep.Problems, fmt.Sprintf("link %s points to unknown zone %s", l.Alias, l.Target))
		}
	}
	for _, zi := range ds.ZoneInfos {
		if !known[zi.Zone] {
			rep.Problems = append(rep.Problems, fmt.Sprintf("zone table lists unknown zone %s", zi.Zone))
		}
	}
	for _, w := range ds.Windows {
		if _, err := db.Zone(w.Zone); err != nil {
			rep.Problems = append(rep.Problems, fmt.Sprintf("windows id %q maps to unknown zone %s", w.WindowsID, w.Zone))
		}
	}

	used := map[string]bool{}
	for _, z := range ds.Zones {
		for _, seg := range z.Segments {
			used[seg.RuleName] = true
		}
	}
	var unused []string
	for name := range ds.Rules {
		if !used[name] {
			unused = append(unused, name)
		}
	}
	sort.Strings(unused)
	for _, name := range unused {
		rep.Problems = append(rep.Problems, fmt.Sprintf("ruleset %s is not used by any zone", name))
	}
	return rep, nil
}
