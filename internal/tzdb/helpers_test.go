package tzdb

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aalvaropc/zoneinfo/internal/domain"
	"github.com/aalvaropc/zoneinfo/internal/infra/tzparse"
	"github.com/aalvaropc/zoneinfo/internal/infra/tzsource"
)

var (
	bundleOnce sync.Once
	bundleDS   domain.Dataset
	bundleErr  error
)

// openBundle builds a fresh database from the bundled records. The dataset is
// parsed once; every call assembles its own zones and caches.
func openBundle(t *testing.T) *Database {
	t.Helper()
	bundleOnce.Do(func() {
		bundleDS, bundleErr = tzsource.Bundled().Load(context.Background())
	})
	if bundleErr != nil {
		t.Fatalf("load bundle: %v", bundleErr)
	}
	db, err := New(context.Background(), bundleDS)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return db
}

func openText(t *testing.T, text string) (*Database, error) {
	t.Helper()
	ds, err := tzparse.Parse(strings.NewReader(text), "inline")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return New(context.Background(), ds)
}

func mustZone(t *testing.T, db *Database, name string) *Zone {
	t.Helper()
	z, err := db.Zone(name)
	if err != nil {
		t.Fatalf("zone %s: %v", name, err)
	}
	return z
}

func utcAt(y int, m time.Month, d, hh, mm, ss int) domain.Instant {
	return domain.Date(y, m, d, hh, mm, ss, 0, domain.FrameUTC)
}

func localAt(y int, m time.Month, d, hh, mm, ss int) domain.Instant {
	return domain.Date(y, m, d, hh, mm, ss, 0, domain.FrameLocal)
}

func toLocal(t *testing.T, z *Zone, i domain.Instant, optimize bool) domain.Instant {
	t.Helper()
	out, err := z.ToLocalTime(i, optimize)
	if err != nil {
		t.Fatalf("%s to local %s: %v", z.Name(), i, err)
	}
	return out
}

func toUTC(t *testing.T, z *Zone, i domain.Instant, optimize bool) domain.Instant {
	t.Helper()
	out, err := z.ToUniversalTime(i, optimize)
	if err != nil {
		t.Fatalf("%s to utc %s: %v", z.Name(), i, err)
	}
	return out
}
