package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/zoneinfo/internal/ports"
	"github.com/aalvaropc/zoneinfo/internal/tzdb"
)

type OpenDatabase struct {
	loader  ports.DatasetLoader
	logger  *slog.Logger
	workers int
}

type OpenOption func(*OpenDatabase)

func WithLogger(l *slog.Logger) OpenOption {
	return func(uc *OpenDatabase) {
		if l != nil {
			uc.logger = l
		}
	}
}

func WithWorkers(n int) OpenOption {
	return func(uc *OpenDatabase) { uc.workers = n }
}

func NewOpenDatabase(loader ports.DatasetLoader, opts ...OpenOption) *OpenDatabase {
	uc := &OpenDatabase{
		loader:  loader,
		logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
		workers: 4,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute loads the records and assembles them into a database.
func (uc *OpenDatabase) Execute(ctx context.Context) (*tzdb.Database, error) {
	ds, err := uc.loader.Load(ctx)
	if err != nil {
		uc.logger.Error("tzdb.load_failed", "err", err)
		return nil, err
	}
	db, err := tzdb.New(ctx, ds, tzdb.WithLogger(uc.logger), tzdb.WithWorkers(uc.workers))
	if err != nil {
		uc.logger.Error("tzdb.assemble_failed", "err", err)
		return nil, err
	}
	return db, nil
}
