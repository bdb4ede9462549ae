// Package zoneinfo converts instants between universal time and the wall clock of
// the zones of the IANA tz database, with their full offset history.
//
// A database is built from the tz source files: the excerpt compiled into the module,
// or a directory such as the one named by TZDIR.
//
//	db, err := zoneinfo.Open(ctx)
//	paris, err := db.Zone("Europe/Paris")
//	local, err := paris.ToLocalTime(zoneinfo.UTC(t), true)
package zoneinfo

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aalvaropc/zoneinfo/internal/domain"
	"github.com/aalvaropc/zoneinfo/internal/infra/tzparse"
	"github.com/aalvaropc/zoneinfo/internal/infra/tzsource"
	"github.com/aalvaropc/zoneinfo/internal/tzdb"
	"github.com/aalvaropc/zoneinfo/internal/usecase"
)

type (
	Database = tzdb.Database
	Zone     = tzdb.Zone
	Instant  = domain.Instant
	Frame    = domain.Frame
	Link     = domain.Link
	Country  = domain.Country
	Segment  = domain.Segment
	Boundary = domain.Boundary

	// Error carries the failing operation, its kind and, for parse errors, the file
	// and line.
	Error = domain.OpError
)

const (
	FrameUnspecified = domain.FrameUnspecified
	FrameUTC         = domain.FrameUTC
	FrameLocal       = domain.FrameLocal
)

// Error kinds, matched with errors.Is.
var (
	ErrNotFound      = domain.ErrNotFound
	ErrFormat        = domain.ErrFormat
	ErrConfiguration = domain.ErrConfiguration
	ErrRange         = domain.ErrRange
)

// UTC returns t as an instant in universal time.
func UTC(t time.Time) Instant { return domain.UTC(t) }

// Local returns the wall clock reading of t, ignoring its location.
func Local(t time.Time) Instant { return domain.Local(t) }

// Date builds an instant from calendar fields.
func Date(year int, month time.Month, day, hour, min, sec, nsec int, frame Frame) Instant {
	return domain.Date(year, month, day, hour, min, sec, nsec, frame)
}

// ParseInstant reads an ISO 8601 time; see usecase.ParseInstant for the accepted forms.
func ParseInstant(s string) (Instant, error) { return usecase.ParseInstant(s) }

type options struct {
	dir     string
	logger  *slog.Logger
	workers int
}

// Option configures Open and Parse.
type Option func(*options)

// WithDir reads tz source files from dir instead of the bundled excerpt. It takes
// precedence over TZDIR.
func WithDir(dir string) Option {
	return func(o *options) { o.dir = dir }
}

// WithLogger sets the logger for loading and assembly. Nil discards the output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithWorkers bounds parallel parsing and assembly. Zero means no bound.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// Open loads and assembles a database. Without WithDir the tz source files are read
// from the directory named by TZDIR, or from the bundled excerpt when TZDIR is empty.
func Open(ctx context.Context, opts ...Option) (*Database, error) {
	o := options{workers: 4}
	for _, opt := range opts {
		opt(&o)
	}
	if o.dir == "" {
		o.dir = os.Getenv("TZDIR")
	}

	srcOpts := []tzsource.Option{tzsource.WithLogger(o.logger), tzsource.WithWorkers(o.workers)}
	src := tzsource.Bundled(srcOpts...)
	if o.dir != "" {
		src = tzsource.Directory(o.dir, srcOpts...)
	}
	return usecase.NewOpenDatabase(src, usecase.WithLogger(o.logger), usecase.WithWorkers(o.workers)).Execute(ctx)
}

// Parse builds a database from records read from r. name labels parse errors.
func Parse(ctx context.Context, r io.Reader, name string, opts ...Option) (*Database, error) {
	o := options{workers: 4}
	for _, opt := range opts {
		opt(&o)
	}
	ds, err := tzparse.Parse(r, name)
	if err != nil {
		return nil, err
	}
	return tzdb.New(ctx, ds, tzdb.WithLogger(o.logger), tzdb.WithWorkers(o.workers))
}
