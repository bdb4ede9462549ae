package tzdb

import (
	"io"
	"log/slog"
)

type options struct {
	logger  *slog.Logger
	workers int
}

// Option configures New.
type Option func(*options)

// WithLogger sets the logger used while building the database.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithWorkers bounds how many zones are assembled concurrently.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

func defaultOptions() options {
	return options{
		logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
		workers: 4,
	}
}
