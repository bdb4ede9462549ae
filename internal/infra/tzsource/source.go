package tzsource

import (
	"context"
	"embed"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/zoneinfo/internal/domain"
	"github.com/aalvaropc/zoneinfo/internal/infra/tzparse"
)

//go:embed data
var bundle embed.FS

const (
	countriesFile = "iso3166.tab"
	zoneTableFile = "zone1970.tab"
	windowsFile   = "windowsZones.tab"
)

// notRecords are extensionless files of a tzdata source tree that hold no records.
// backzone redefines zones of the main files and is only read by zic on request.
var notRecords = map[string]bool{
	"Makefile":     true,
	"NEWS":         true,
	"README":       true,
	"LICENSE":      true,
	"CONTRIBUTING": true,
	"SECURITY":     true,
	"THEORY":       true,
	"leapseconds":  true,
	"version":      true,
	"calendars":    true,
	"backzone":     true,
}

type kind int

const (
	kindSkip kind = iota
	kindRecords
	kindCountries
	kindZoneTable
	kindWindows
)

// classify decides how a file of the source directory is read. Files without an
// extension hold records; the three tables are matched regardless of case.
func classify(name string) kind {
	switch strings.ToLower(name) {
	case countriesFile:
		return kindCountries
	case zoneTableFile:
		return kindZoneTable
	case strings.ToLower(windowsFile):
		return kindWindows
	}
	if strings.HasPrefix(name, ".") || notRecords[name] || path.Ext(name) != "" {
		return kindSkip
	}
	return kindRecords
}

// Source reads tz records from one directory of a filesystem.
type Source struct {
	fs      afero.Fs
	root    string
	label   string
	workers int
	logger  *slog.Logger

	// windowsFallback supplies the Windows mapping when root has none.
	windowsFallback bool
}

// Option configures a Source.
type Option func(*Source)

// WithLogger sets the logger used while loading.
func WithLogger(l *slog.Logger) Option {
	return func(s *Source) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithWorkers bounds how many files are parsed concurrently.
func WithWorkers(n int) Option {
	return func(s *Source) { s.workers = n }
}

// Bundled returns the source compiled into the binary.
func Bundled(opts ...Option) *Source {
	sub, err := fs.Sub(bundle, "data")
	if err != nil {
		panic(err)
	}
	return newSource(afero.FromIOFS{FS: sub}, ".", "bundle", false, opts)
}

// Directory returns a source reading a tzdata directory such as the one named by TZDIR.
// The bundled Windows mapping is used when the directory has none.
func Directory(dir string, opts ...Option) *Source {
	return newSource(afero.NewOsFs(), dir, dir, true, opts)
}

// FromFs returns a source reading root on fsys.
func FromFs(fsys afero.Fs, root string, opts ...Option) *Source {
	return newSource(fsys, root, root, false, opts)
}

func newSource(fsys afero.Fs, root, label string, fallback bool, opts []Option) *Source {
	s := &Source{
		fs:              fsys,
		root:            root,
		label:           label,
		workers:         4,
		logger:          slog.New(slog.NewJSONHandler(io.Discard, nil)),
		windowsFallback: fallback,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// String names the source for logs and messages.
func (s *Source) String() string { return s.label }

// Load parses every record and table file of the source. Files are parsed
// concurrently and merged in file name order, so the result does not depend on
// scheduling.
func (s *Source) Load(ctx context.Context) (domain.Dataset, error) {
	const op = "tzsource.load"

	infos, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		return domain.Dataset{}, &domain.OpError{Op: op, Kind: domain.KindNotFound, Path: s.label, Err: err}
	}

	var names []string
	hasWindows := false
	for _, fi := range infos {
		if fi.IsDir() {
			continue
		}
		k := classify(fi.Name())
		if k == kindSkip {
			continue
		}
		if k == kindWindows {
			hasWindows = true
		}
		names = append(names, fi.Name())
	}
	sort.Strings(names)
	if len(names) == 0 {
		return domain.Dataset{}, &domain.OpError{Op: op, Kind: domain.KindNotFound, Path: s.label, Err: domain.ErrNotFound}
	}

	parts := make([]domain.Dataset, len(names))
	g, gctx := errgroup.WithContext(ctx)
	if s.workers > 0 {
		g.SetLimit(s.workers)
	}
	for idx, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ds, err := parseFile(s.fs, s.join(name), name)
			if err != nil {
				return err
			}
			parts[idx] = ds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Dataset{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Dataset{}, err
	}

	out := domain.NewDataset()
	for _, p := range parts {
		out.Merge(p)
	}

	if !hasWindows && s.windowsFallback {
		b := Bundled()
		ds, err := parseFile(b.fs, windowsFile, windowsFile)
		if err != nil {
			return domain.Dataset{}, err
		}
		out.Merge(ds)
	}

	s.logger.Debug("tzsource.loaded",
		"source", s.label,
		"files", len(names),
		"zones", len(out.Zones),
		"links", len(out.Links),
	)
	return out, nil
}

func (s *Source) join(name string) string {
	if s.root == "." || s.root == "" {
		return name
	}
	return filepath.Join(s.root, name)
}

func parseFile(fsys afero.Fs, full, name string) (domain.Dataset, error) {
	f, err := fsys.Open(full)
	if err != nil {
		return domain.Dataset{}, &domain.OpError{Op: "tzsource.open", Kind: domain.KindNotFound, Path: full, Err: err}
	}
	defer f.Close()

	ds := domain.NewDataset()
	switch classify(name) {
	case kindRecords:
		return tzparse.Parse(f, full)
	case kindCountries:
		ds.Countries, err = tzparse.ParseCountries(f, full)
	case kindZoneTable:
		ds.ZoneInfos, err = tzparse.ParseZoneTable(f, full)
	case kindWindows:
		ds.Windows, err = tzparse.ParseWindows(f, full)
	}
	if err != nil {
		return domain.Dataset{}, err
	}
	return ds, nil
}
