package tzparse

import (
	"bufio"
	"io"

	"github.com/aalvaropc/zoneinfo/internal/domain"
)

const (
	keywordRule = "Rule"
	keywordZone = "Zone"
	keywordLink = "Link"
)

// Parse reads Rule, Zone and Link records from r. path labels records and errors.
// Zone rule names are left unresolved: a ruleset may be defined in a later file.
func Parse(r io.Reader, path string) (domain.Dataset, error) {
	ds := domain.NewDataset()

	var (
		zone     *domain.Zone
		expect   bool
		lastLine int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		p := pos{path: path, line: n}

		f, err := Fields(sc.Text(), 0)
		if err != nil {
			return domain.Dataset{}, p.fail("tzparse.fields", "", err.Error())
		}
		if len(f) == 0 {
			continue
		}

		if expect {
			if f[0] == keywordRule || f[0] == keywordZone || f[0] == keywordLink {
				return domain.Dataset{}, p.fail("tzparse.zone", f[0], "expected zone continuation line not found")
			}
			seg, more, err := parseZoneLine(f, true, p)
			if err != nil {
				return domain.Dataset{}, err
			}
			zone.Segments = append(zone.Segments, seg)
			expect, lastLine = more, n
			continue
		}

		switch f[0] {
		case keywordRule:
			rule, err := parseRule(f, p)
			if err != nil {
				return domain.Dataset{}, err
			}
			ds.Rules.Add(rule)
		case keywordZone:
			seg, more, err := parseZoneLine(f, false, p)
			if err != nil {
				return domain.Dataset{}, err
			}
			zone = &domain.Zone{Name: f[1], Segments: []domain.Segment{seg}, File: path, Line: n}
			ds.Zones = append(ds.Zones, zone)
			expect, lastLine = more, n
		case keywordLink:
			if len(f) != 3 {
				return domain.Dataset{}, p.fail("tzparse.link", "", "wrong number of fields on Link line")
			}
			ds.Links = append(ds.Links, domain.Link{Target: f[1], Alias: f[2]})
		default:
			return domain.Dataset{}, p.fail("tzparse.parse", f[0], "input line of unknown type")
		}
	}
	if err := sc.Err(); err != nil {
		return domain.Dataset{}, &domain.OpError{Op: "tzparse.parse", Kind: domain.KindFormat, Path: path, Err: err}
	}
	if expect {
		return domain.Dataset{}, pos{path: path, line: lastLine}.fail("tzparse.zone", zone.Name, "expected zone continuation line not found")
	}
	return ds, nil
}
