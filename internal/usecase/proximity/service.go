// Package proximity finds catalog objects around a sky position.
package proximity

import (
	"context"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/kailas-cloud/ngcdex/internal/db"
	"github.com/kailas-cloud/ngcdex/internal/domain"
	"github.com/kailas-cloud/ngcdex/internal/domain/dso"
	"github.com/kailas-cloud/ngcdex/internal/domain/search/filter"
	"github.com/kailas-cloud/ngcdex/internal/domain/search/result"
	"github.com/kailas-cloud/ngcdex/internal/domain/sky"
	"github.com/kailas-cloud/ngcdex/internal/logger"
	"github.com/kailas-cloud/ngcdex/internal/metrics"
)

// DefaultMaxRadius is the largest accepted search radius, in arcminutes.
const DefaultMaxRadius = 600.0

// Catalog restrictions accepted by proximity queries.
const (
	CatalogAll = "all"
	CatalogNGC = "NGC"
	CatalogIC  = "IC"
)

// Service answers proximity queries.
type Service struct {
	repo      Repository
	resolver  Resolver
	maxRadius float64
}

// New creates a proximity service. A non-positive maxRadius selects DefaultMaxRadius.
func New(repo Repository, resolver Resolver, maxRadius float64) *Service {
	if maxRadius <= 0 {
		maxRadius = DefaultMaxRadius
	}
	return &Service{repo: repo, resolver: resolver, maxRadius: maxRadius}
}

// Nearby returns the objects within radius arcminutes of center, nearest
// first. Duplicate records and objects without coordinates are never returned.
func (s *Service) Nearby(
	ctx context.Context, center sky.Coordinates, radius float64, catalog string,
) ([]result.Neighbor, error) {
	return s.search(ctx, center, radius, catalog, "")
}

// Neighbors returns the objects within radius arcminutes of the object named
// raw, excluding the object itself.
func (s *Service) Neighbors(
	ctx context.Context, raw string, radius float64, catalog string,
) ([]result.Neighbor, error) {
	ref, err := s.resolver.Get(ctx, raw)
	if err != nil {
		return nil, err
	}
	center, err := objectCoordinates(ref)
	if err != nil {
		return nil, err
	}
	return s.search(ctx, center, radius, catalog, ref.Name())
}

// Separation returns the angular separation between two named objects.
func (s *Service) Separation(ctx context.Context, a, b string) (sky.Separation, error) {
	from, err := s.resolver.Get(ctx, a)
	if err != nil {
		return sky.Separation{}, err
	}
	to, err := s.resolver.Get(ctx, b)
	if err != nil {
		return sky.Separation{}, err
	}
	return Between(from, to)
}

// Between returns the angular separation of two already assembled objects.
func Between(a, b dso.Dso) (sky.Separation, error) {
	from, err := objectCoordinates(a)
	if err != nil {
		return sky.Separation{}, err
	}
	to, err := objectCoordinates(b)
	if err != nil {
		return sky.Separation{}, err
	}
	return sky.Distance(from, to), nil
}

func objectCoordinates(d dso.Dso) (sky.Coordinates, error) {
	c, ok := d.Coordinates()
	if !ok {
		return sky.Coordinates{}, errors.Wrapf(domain.ErrNoCoordinates, "object %s", d.Name())
	}
	return c, nil
}

type candidate struct {
	row      db.ObjectRow
	distance float64
}

func (s *Service) search(
	ctx context.Context, center sky.Coordinates, radius float64, catalog, exclude string,
) ([]result.Neighbor, error) {
	if err := s.validateRadius(radius); err != nil {
		return nil, err
	}
	q, err := Query(center, sky.ArcminToRadians(radius), catalog)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.Rows(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "fetch candidates")
	}

	limit := radius / 60
	var inside []candidate
	for _, row := range rows {
		if !row.HasCoordinates() || row.Name == exclude {
			continue
		}
		c, err := sky.New(*row.RA, *row.Dec)
		if err != nil {
			return nil, domain.CorruptCatalog("object %s has invalid coordinates: %v", row.Name, err)
		}
		if d := sky.RadiansToDegrees(sky.Angle(center, c)); d <= limit {
			inside = append(inside, candidate{row: row, distance: d})
		}
	}
	metrics.ProximityCandidates.Observe(float64(len(rows)))
	metrics.ProximityHits.Observe(float64(len(inside)))

	hits := make([]result.Neighbor, 0, len(inside))
	for _, c := range inside {
		obj, err := s.repo.Assemble(ctx, c.row)
		if err != nil {
			return nil, err
		}
		hits = append(hits, result.New(obj, c.distance))
	}
	result.Sort(hits)

	logger.FromContext(ctx).Debug("Proximity query",
		zap.String("center", center.String()),
		zap.Float64("radius_arcmin", radius),
		zap.Int("candidates", len(rows)),
		zap.Int("hits", len(hits)),
	)
	return hits, nil
}

func (s *Service) validateRadius(radius float64) error {
	if math.IsNaN(radius) || radius <= 0 {
		return domain.InvalidCriteria("radius must be a positive number of arcminutes")
	}
	if radius > s.maxRadius {
		return errors.WithHintf(
			domain.InvalidCriteria("radius %g' exceeds the limit", radius),
			"use a radius of at most %g arcminutes", s.maxRadius,
		)
	}
	return nil
}

// Query builds the coarse candidate query for a cap of radius radians around
// center: the bounding box, no duplicate records and an optional catalog.
func Query(center sky.Coordinates, radius float64, catalog string) (db.ObjectQuery, error) {
	var must, should []filter.Condition

	switch strings.ToUpper(strings.TrimSpace(catalog)) {
	case "", strings.ToUpper(CatalogAll):
	case CatalogNGC:
		c, err := filter.NewPrefix(filter.KeyName, CatalogNGC)
		if err != nil {
			return db.ObjectQuery{}, err
		}
		must = append(must, c)
	case CatalogIC:
		c, err := filter.NewPrefix(filter.KeyName, CatalogIC)
		if err != nil {
			return db.ObjectQuery{}, err
		}
		must = append(must, c)
	default:
		return db.ObjectQuery{}, errors.WithHint(
			domain.InvalidCriteria("catalog %q", catalog),
			"catalog must be one of all, NGC, IC",
		)
	}

	box := sky.BoundingBox(center, radius)
	dec, err := filter.NewRange(filter.KeyDec, filter.Between(box.DecMin, box.DecMax))
	if err != nil {
		return db.ObjectQuery{}, err
	}
	must = append(must, dec)

	if !box.RA.IsFull() {
		for _, iv := range box.RA.Intervals() {
			c, err := filter.NewRange(filter.KeyRA, filter.Between(iv.Lo, iv.Hi))
			if err != nil {
				return db.ObjectQuery{}, err
			}
			if box.RA.IsSplit() {
				should = append(should, c)
			} else {
				must = append(must, c)
			}
		}
	}

	dup, err := filter.NewMatch(filter.KeyType, string(dso.TypeDuplicate))
	if err != nil {
		return db.ObjectQuery{}, err
	}

	expr, err := filter.NewExpression(must, should, []filter.Condition{dup})
	if err != nil {
		return db.ObjectQuery{}, err
	}
	return db.ObjectQuery{Filters: expr}, nil
}
