package engine

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aalvaropc/zoneinfo/internal/domain"
	"github.com/aalvaropc/zoneinfo/internal/infra/tzparse"
)

func loadSample(t *testing.T) domain.Dataset {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", "sample.zi"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	ds, err := tzparse.Parse(f, "sample.zi")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return ds
}

func sampleZone(t *testing.T, ds domain.Dataset, name string) *domain.Zone {
	t.Helper()
	for _, z := range ds.Zones {
		if z.Name != name {
			continue
		}
		az, err := Assemble(z, ds.Rules)
		if err != nil {
			t.Fatalf("assemble %s: %v", name, err)
		}
		return az
	}
	t.Fatalf("zone %s not in sample", name)
	return nil
}

func utc(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func point(y int, m time.Month, d, hh, mm int, ref domain.TimeReference) domain.Until {
	return domain.Until{
		Year: y,
		RuleDate: domain.RuleDate{
			Month: m,
			Day:   domain.DayOfRule{Kind: domain.DayOfMonth, Day: d},
			At:    time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute,
			AtRef: ref,
		},
	}
}
