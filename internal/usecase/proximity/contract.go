package proximity

import (
	"context"

	"github.com/kailas-cloud/ngcdex/internal/db"
	"github.com/kailas-cloud/ngcdex/internal/domain/dso"
)

// Repository reads candidate rows and assembles the ones that survive.
type Repository interface {
	Rows(ctx context.Context, q db.ObjectQuery) ([]db.ObjectRow, error)
	Assemble(ctx context.Context, row db.ObjectRow) (dso.Dso, error)
}

// Resolver turns a user-supplied identifier into its canonical object.
type Resolver interface {
	Get(ctx context.Context, raw string) (dso.Dso, error)
}
