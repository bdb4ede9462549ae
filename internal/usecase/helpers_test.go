package usecase

import (
	"context"
	"testing"

	"github.com/aalvaropc/zoneinfo/internal/infra/tzsource"
	"github.com/aalvaropc/zoneinfo/internal/tzdb"
)

func openBundle(t *testing.T) *tzdb.Database {
	t.Helper()
	db, err := NewOpenDatabase(tzsource.Bundled()).Execute(context.Background())
	if err != nil {
		t.Fatalf("open bundle: %v", err)
	}
	return db
}
