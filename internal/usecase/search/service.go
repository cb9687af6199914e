// Package search lists catalog objects matching filter criteria.
package search

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/kailas-cloud/ngcdex/internal/domain/dso"
	"github.com/kailas-cloud/ngcdex/internal/domain/search/criteria"
	"github.com/kailas-cloud/ngcdex/internal/logger"
)

// Service runs filtered catalog listings.
type Service struct {
	repo Repository
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every record matching c, in catalog order (Messier order for
// the M catalog). Duplicate records are listed as stored. Contradictory
// bounds give an empty result.
func (s *Service) List(ctx context.Context, c criteria.Criteria) ([]dso.Dso, error) {
	norm, err := c.Normalized()
	if err != nil {
		return nil, err
	}
	q, err := Build(norm)
	if err != nil {
		return nil, errors.Wrap(err, "build query")
	}

	objects, err := s.repo.Find(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "list objects")
	}
	logger.FromContext(ctx).Debug("Listed catalog objects",
		zap.Int("conditions", len(q.Filters.Must())+len(q.Filters.Should())+len(q.Filters.MustNot())),
		zap.Int("results", len(objects)),
	)
	return objects, nil
}
