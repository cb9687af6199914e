// Package objcache caches catalog row lookups in a key-value store.
package objcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/ngcdex/internal/db"
	"github.com/kailas-cloud/ngcdex/internal/domain"
)

// DefaultTTL applies when the configured TTL is not positive.
const DefaultTTL = 24 * time.Hour

// Cache kinds, used in keys and as the "kind" metric label.
const (
	kindObject      = "object"
	kindAliases     = "aliases"
	kindCommonNames = "names"
	kindAliasTarget = "alias"
)

// Config tunes the cache. Zero values fall back to DefaultTTL and domain.KeyPrefix.
type Config struct {
	TTL    time.Duration
	Prefix string
}

// store is the consumer interface for the cache backend (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedCatalog decorates a catalog reader. Exact-key lookups are cached;
// predicate queries always go to the inner reader. Cache failures are logged
// and never fail a lookup. Absent keys are not cached.
type CachedCatalog struct {
	inner      db.CatalogReader
	store      store
	ttl        time.Duration
	prefix     string
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with labels "kind" and "result" ("hit"/"miss"), passed explicitly.
func New(
	inner db.CatalogReader,
	s store,
	cfg Config,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedCatalog {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Prefix == "" {
		cfg.Prefix = domain.KeyPrefix
	}
	return &CachedCatalog{
		inner:      inner,
		store:      s,
		ttl:        cfg.TTL,
		prefix:     cfg.Prefix,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// FetchByKey returns a cached primary row or reads it from the inner reader.
func (c *CachedCatalog) FetchByKey(ctx context.Context, key string) (db.ObjectRow, error) {
	return cached(ctx, c, kindObject, key, func() (db.ObjectRow, error) {
		return c.inner.FetchByKey(ctx, key)
	})
}

// FetchAliases returns cached alias rows or reads them from the inner reader.
func (c *CachedCatalog) FetchAliases(ctx context.Context, key string) ([]db.AliasRow, error) {
	return cached(ctx, c, kindAliases, key, func() ([]db.AliasRow, error) {
		return c.inner.FetchAliases(ctx, key)
	})
}

// FetchCommonNames returns cached common names or reads them from the inner reader.
func (c *CachedCatalog) FetchCommonNames(ctx context.Context, key string) ([]string, error) {
	return cached(ctx, c, kindCommonNames, key, func() ([]string, error) {
		return c.inner.FetchCommonNames(ctx, key)
	})
}

// FetchAliasTarget returns a cached alias mapping or reads it from the inner reader.
func (c *CachedCatalog) FetchAliasTarget(ctx context.Context, alias string) (string, error) {
	return cached(ctx, c, kindAliasTarget, alias, func() (string, error) {
		return c.inner.FetchAliasTarget(ctx, alias)
	})
}

// FetchByPredicates is not cached.
func (c *CachedCatalog) FetchByPredicates(ctx context.Context, q db.ObjectQuery) ([]db.ObjectRow, error) {
	return c.inner.FetchByPredicates(ctx, q) //nolint:wrapcheck // transparent decorator
}

func (c *CachedCatalog) cacheKey(kind, key string) string {
	return c.prefix + kind + ":" + key
}

func (c *CachedCatalog) incCache(kind, result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(kind, result).Inc()
	}
}

func cached[T any](ctx context.Context, c *CachedCatalog, kind, key string, load func() (T, error)) (T, error) {
	ck := c.cacheKey(kind, key)

	if v, ok := getFromCache[T](ctx, c, ck); ok {
		c.incCache(kind, "hit")
		return v, nil
	}
	c.incCache(kind, "miss")

	v, err := load()
	if err != nil {
		return v, err
	}
	putToCache(ctx, c, ck, v)
	return v, nil
}

func getFromCache[T any](ctx context.Context, c *CachedCatalog, key string) (T, bool) {
	var v T
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to read cached catalog row", zap.String("key", key), zap.Error(err))
		}
		return v, false
	}
	if len(data) == 0 {
		return v, false
	}
	if err := json.Unmarshal(data, &v); err != nil {
		c.logger.Warn("Failed to parse cached catalog row", zap.String("key", key), zap.Error(err))
		return v, false
	}
	return v, true
}

func putToCache[T any](ctx context.Context, c *CachedCatalog, key string, v T) {
	data, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("Failed to encode catalog row for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache catalog row", zap.String("key", key), zap.Error(err))
	}
}
