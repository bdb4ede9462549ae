package usecase

import (
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aalvaropc/zoneinfo/internal/domain"
	"github.com/aalvaropc/zoneinfo/internal/tzdb"
)

// ZoneEntry is one line of a zone listing. Target is set for links only.
type ZoneEntry struct {
	Name        string `json:"name" yaml:"name"`
	Target      string `json:"target,omitempty" yaml:"target,omitempty"`
	Coordinates string `json:"coordinates,omitempty" yaml:"coordinates,omitempty"`
	Comment     string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

type ListZones struct {
	db *tzdb.Database
}

func NewListZones(db *tzdb.Database) *ListZones {
	return &ListZones{db: db}
}

// Execute lists the zones whose name matches the glob pattern, such as "Europe/*" or
// "**/Buenos_Aires". An empty pattern matches everything. Links are listed too when
// links is set.
func (uc *ListZones) Execute(pattern string, links bool) ([]ZoneEntry, error) {
	const op = "usecase.list_zones"
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, domain.ConfigurationError(op, "invalid pattern "+pattern)
	}
	match := func(name string) bool {
		if pattern == "" {
			return true
		}
		ok, _ := doublestar.Match(pattern, name)
		return ok
	}

	var out []ZoneEntry
	for _, z := range uc.db.Zones() {
		if match(z.Name()) {
			out = append(out, ZoneEntry{Name: z.Name(), Coordinates: z.Coordinates(), Comment: z.Comment()})
		}
	}
	if links {
		for _, l := range uc.db.Links() {
			if match(l.Alias) {
				out = append(out, ZoneEntry{Name: l.Alias, Target: l.Target})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
