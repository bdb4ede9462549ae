package tzdb

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aalvaropc/zoneinfo/internal/domain"
	"github.com/aalvaropc/zoneinfo/internal/engine"
)

// Database is an assembled, read-only set of zones.
type Database struct {
	zones     map[string]*Zone
	names     []string
	links     map[string]string
	countries map[string]domain.Country
	windows   map[string]string
}

// New binds and assembles every zone of ds. Several databases may coexist.
func New(ctx context.Context, ds domain.Dataset, opts ...Option) (*Database, error) {
	const op = "tzdb.new"
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	began := time.Now()

	seen := make(map[string]*domain.Zone, len(ds.Zones))
	for _, z := range ds.Zones {
		if prev, ok := seen[z.Name]; ok {
			return nil, domain.FormatError(op, z.File, z.Line, z.Name,
				fmt.Sprintf("duplicate zone name (first defined at %s:%d)", prev.File, prev.Line))
		}
		seen[z.Name] = z
	}

	assembled, err := engine.AssembleAll(ctx, ds.Zones, ds.Rules, o.workers)
	if err != nil {
		return nil, err
	}

	db := &Database{
		zones:     make(map[string]*Zone, len(assembled)),
		links:     make(map[string]string, len(ds.Links)),
		countries: make(map[string]domain.Country, len(ds.Countries)),
		windows:   make(map[string]string, len(ds.Windows)),
	}
	for _, z := range assembled {
		db.zones[z.Name] = newZone(z, ds.Rules)
		db.names = append(db.names, z.Name)
	}
	sort.Strings(db.names)

	for _, l := range ds.Links {
		if _, ok := db.zones[l.Alias]; ok {
			return nil, domain.FormatError(op, "", 0, l.Alias, "link name collides with a zone")
		}
		db.links[l.Alias] = l.Target
	}

	db.indexTables(ds)

	o.logger.Info("tzdb.loaded",
		"zones", len(db.zones),
		"links", len(db.links),
		"rulesets", len(ds.Rules),
		"countries", len(db.countries),
		"elapsed", time.Since(began).String(),
	)
	return db, nil
}

// indexTables decorates zones from the zone table and groups zones by country.
func (db *Database) indexTables(ds domain.Dataset) {
	for _, c := range ds.Countries {
		c.Zones = nil
		db.countries[c.Code] = c
	}
	for _, zi := range ds.ZoneInfos {
		if z, ok := db.zones[zi.Zone]; ok {
			z.coordinates = zi.Coordinates
			z.comment = zi.Comment
		}
		for _, code := range zi.Countries {
			c, ok := db.countries[code]
			if !ok {
				c = domain.Country{Code: code}
			}
			c.Zones = append(c.Zones, zi.Zone)
			db.countries[code] = c
		}
	}
	for _, w := range ds.Windows {
		if _, ok := db.windows[w.WindowsID]; !ok {
			db.windows[w.WindowsID] = w.Zone
		}
	}
}

// ZoneNames returns the sorted names of all zones, links excluded.
func (db *Database) ZoneNames() []string {
	out := make([]string, len(db.names))
	copy(out, db.names)
	return out
}

// Zones returns every zone in name order.
func (db *Database) Zones() []*Zone {
	out := make([]*Zone, 0, len(db.names))
	for _, n := range db.names {
		out = append(out, db.zones[n])
	}
	return out
}

// Zone returns the zone called name, following at most one link.
func (db *Database) Zone(name string) (*Zone, error) {
	const op = "tzdb.zone"
	if name == "" {
		return nil, domain.ConfigurationError(op, "empty zone name")
	}
	if z, ok := db.zones[name]; ok {
		return z, nil
	}
	if target, ok := db.links[name]; ok {
		if z, ok := db.zones[target]; ok {
			return z, nil
		}
	}
	return nil, &domain.OpError{Op: op, Kind: domain.KindNotFound, Err: fmt.Errorf("zone %q", name)}
}

// Links returns every link sorted by alias.
func (db *Database) Links() []domain.Link {
	out := make([]domain.Link, 0, len(db.links))
	for alias, target := range db.links {
		out = append(out, domain.Link{Alias: alias, Target: target})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Alias < out[j].Alias })
	return out
}

// Countries returns the country table sorted by code.
func (db *Database) Countries() []domain.Country {
	out := make([]domain.Country, 0, len(db.countries))
	for _, c := range db.countries {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Country returns the country with the ISO 3166 code.
func (db *Database) Country(code string) (domain.Country, error) {
	const op = "tzdb.country"
	if code == "" {
		return domain.Country{}, domain.ConfigurationError(op, "empty country code")
	}
	c, ok := db.countries[code]
	if !ok {
		return domain.Country{}, &domain.OpError{Op: op, Kind: domain.KindNotFound, Err: fmt.Errorf("country %q", code)}
	}
	return c, nil
}

// FindByWindowsID returns the zone mapped to a Windows time zone id.
func (db *Database) FindByWindowsID(id string) (*Zone, error) {
	const op = "tzdb.find_by_windows_id"
	if id == "" {
		return nil, domain.ConfigurationError(op, "empty windows id")
	}
	name, ok := db.windows[id]
	if !ok {
		return nil, &domain.OpError{Op: op, Kind: domain.KindNotFound, Err: fmt.Errorf("windows id %q", id)}
	}
	return db.Zone(name)
}
