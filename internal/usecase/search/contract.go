package search

import (
	"context"

	"github.com/kailas-cloud/ngcdex/internal/db"
	"github.com/kailas-cloud/ngcdex/internal/domain/dso"
)

// Repository defines the storage contract for filtered listings.
type Repository interface {
	Find(ctx context.Context, q db.ObjectQuery) ([]dso.Dso, error)
}
