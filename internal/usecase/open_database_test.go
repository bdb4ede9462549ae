package usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/aalvaropc/zoneinfo/internal/domain"
	"github.com/aalvaropc/zoneinfo/internal/infra/tzsource"
)

type failingLoader struct{ err error }

func (f failingLoader) Load(context.Context) (domain.Dataset, error) {
	return domain.Dataset{}, f.err
}

func TestOpenDatabaseLogsLoad(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	db, err := NewOpenDatabase(tzsource.Bundled(), WithLogger(logger), WithWorkers(1)).Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Zone("Europe/Paris"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"msg":"tzdb.loaded"`) {
		t.Fatalf("missing load log line: %s", buf.String())
	}
}

func TestOpenDatabaseFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	missing := &domain.OpError{Op: "test", Kind: domain.KindNotFound, Err: errors.New("no data")}
	if _, err := NewOpenDatabase(failingLoader{err: missing}, WithLogger(logger)).Execute(context.Background()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !strings.Contains(buf.String(), "tzdb.load_failed") {
		t.Fatalf("missing load failure log: %s", buf.String())
	}

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/tz/records", []byte("Zone\tBad/Zone\t1:00\tNoSuchRules\tB%sT\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if _, err := NewOpenDatabase(tzsource.FromFs(fs, "/tz"), WithLogger(logger)).Execute(context.Background()); err == nil {
		t.Fatal("expected assembly error for unknown ruleset")
	}
	if !strings.Contains(buf.String(), "tzdb.assemble_failed") {
		t.Fatalf("missing assembly failure log: %s", buf.String())
	}
}
