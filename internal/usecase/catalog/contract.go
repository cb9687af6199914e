package catalog

import (
	"context"

	"github.com/kailas-cloud/ngcdex/internal/domain/dso"
)

// Repository defines the object lookups the resolver needs.
type Repository interface {
	Get(ctx context.Context, name string) (dso.Dso, error)
	AliasTarget(ctx context.Context, alias string) (string, error)
	DuplicateOf(ctx context.Context, name string) (target string, ok bool, err error)
}
