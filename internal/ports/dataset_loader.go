package ports

import (
	"context"

	"github.com/aalvaropc/zoneinfo/internal/domain"
)

// DatasetLoader reads tz records from a source (bundled data, a TZDIR directory).
type DatasetLoader interface {
	Load(ctx context.Context) (domain.Dataset, error)
}
