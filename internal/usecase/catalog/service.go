// Package catalog resolves user-supplied identifiers to canonical catalog names.
package catalog

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/kailas-cloud/ngcdex/internal/domain"
	domcat "github.com/kailas-cloud/ngcdex/internal/domain/catalog"
	"github.com/kailas-cloud/ngcdex/internal/domain/dso"
	"github.com/kailas-cloud/ngcdex/internal/logger"
)

// Service resolves identifiers and describes objects.
type Service struct {
	repo Repository
}

// New creates a catalog service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Resolve maps any accepted spelling of an object name to the canonical name
// of a non-duplicate record.
func (s *Service) Resolve(ctx context.Context, raw string) (string, error) {
	key, err := s.Lookup(ctx, raw)
	if err != nil {
		return "", err
	}
	return s.followDuplicates(ctx, key)
}

// Lookup maps raw to the canonical name of the record it designates, without
// following duplicate references. Every designation goes through the
// identifier table first, so an NGC or IC number listed as another record's
// identifier resolves to that record.
func (s *Service) Lookup(ctx context.Context, raw string) (string, error) {
	id, err := domcat.Recognize(raw)
	if err != nil {
		return "", err
	}
	name, err := s.repo.AliasTarget(ctx, id.String())
	switch {
	case err == nil:
		return name, nil
	case id.IsPrimary() && errors.Is(err, domain.ErrObjectNotFound):
		// NGC and IC designations double as record names.
		return id.String(), nil
	default:
		return "", errors.Wrapf(err, "resolve %s", id)
	}
}

// Get resolves raw and assembles the canonical object.
func (s *Service) Get(ctx context.Context, raw string) (dso.Dso, error) {
	key, err := s.Resolve(ctx, raw)
	if err != nil {
		return dso.Dso{}, err
	}
	return s.get(ctx, key)
}

// GetRecord returns the record raw designates even when it is a duplicate.
func (s *Service) GetRecord(ctx context.Context, raw string) (dso.Dso, error) {
	key, err := s.Lookup(ctx, raw)
	if err != nil {
		return dso.Dso{}, err
	}
	return s.get(ctx, key)
}

func (s *Service) get(ctx context.Context, key string) (dso.Dso, error) {
	d, err := s.repo.Get(ctx, key)
	if err != nil {
		return dso.Dso{}, errors.Wrapf(err, "get %s", key)
	}
	return d, nil
}

// followDuplicates walks duplicate references until a non-duplicate record.
// A reference that cycles or points at a missing record is a corrupt catalog.
func (s *Service) followDuplicates(ctx context.Context, key string) (string, error) {
	visited := map[string]bool{key: true}
	for {
		ref, isDup, err := s.repo.DuplicateOf(ctx, key)
		if err != nil {
			if len(visited) > 1 && errors.Is(err, domain.ErrObjectNotFound) {
				return "", domain.CorruptCatalog("duplicate reference to missing record %s", key)
			}
			return "", errors.Wrapf(err, "resolve %s", key)
		}
		if !isDup {
			return key, nil
		}

		id, err := domcat.Recognize(ref)
		if err != nil || !id.IsPrimary() {
			return "", domain.CorruptCatalog("duplicate record %s has malformed reference %q", key, ref)
		}
		next := id.String()
		if visited[next] {
			return "", domain.CorruptCatalog("duplicate reference cycle at %s -> %s", key, next)
		}

		logger.FromContext(ctx).Debug("Following duplicate reference",
			zap.String("from", key),
			zap.String("to", next),
		)
		visited[next] = true
		key = next
	}
}
