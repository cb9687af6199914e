// Package app is the composition root shared by the CLI, the HTTP server and
// the library facade.
package app

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/kailas-cloud/ngcdex/internal/config"
	"github.com/kailas-cloud/ngcdex/internal/db"
	"github.com/kailas-cloud/ngcdex/internal/db/sqlite"
	"github.com/kailas-cloud/ngcdex/internal/db/valkey"
	"github.com/kailas-cloud/ngcdex/internal/metrics"
	"github.com/kailas-cloud/ngcdex/internal/repository/instrumented"
	"github.com/kailas-cloud/ngcdex/internal/repository/objcache"
	"github.com/kailas-cloud/ngcdex/internal/repository/object"
	cataloguc "github.com/kailas-cloud/ngcdex/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/ngcdex/internal/usecase/health"
	proximityuc "github.com/kailas-cloud/ngcdex/internal/usecase/proximity"
	searchuc "github.com/kailas-cloud/ngcdex/internal/usecase/search"
)

// Cache is a key/value backend for the row cache.
type Cache interface {
	db.KVStore
	db.Pinger
}

// Option customizes App construction.
type Option func(*options)

type options struct {
	cache Cache
}

// WithCache uses c as the row cache instead of dialing the configured Valkey.
func WithCache(c Cache) Option {
	return func(o *options) { o.cache = c }
}

// App holds the wired services.
type App struct {
	Catalog   *cataloguc.Service
	Search    *searchuc.Service
	Proximity *proximityuc.Service
	Health    *healthuc.Service

	store  *sqlite.Store
	valkey *valkey.Store
	logger *zap.Logger
}

// New opens the catalog and wires the store decorator chain:
// sqlite -> instrumented -> cached (optional) -> object repository -> use cases.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics.Register()

	store, err := sqlite.Open(ctx, cfg.Catalog.Path, logger)
	if err != nil {
		return nil, err
	}
	a := &App{store: store, logger: logger}

	var reader db.CatalogReader = instrumented.New(store, logger)

	cache := o.cache
	if cache == nil && cfg.Cache.Enabled {
		vs, err := valkey.NewStore(valkey.Config{
			Addrs:    cfg.Cache.Addrs,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err != nil {
			_ = a.Close()
			return nil, errors.Wrap(err, "create cache store")
		}
		a.valkey = vs
		timeout := time.Duration(cfg.Cache.ReadinessTimeout) * time.Second
		if err := vs.WaitForReady(ctx, timeout); err != nil {
			_ = a.Close()
			return nil, errors.Wrap(err, "cache not ready")
		}
		cache = vs
		logger.Info("Connected to cache", zap.Strings("addrs", cfg.Cache.Addrs))
	}

	// Pass a nil interface, not a typed nil pointer, when there is no cache.
	var cachePinger healthuc.Pinger
	if cache != nil {
		reader = objcache.New(reader, cache, objcache.Config{
			TTL:    time.Duration(cfg.Cache.TTLSec) * time.Second,
			Prefix: cfg.Cache.KeyPrefix,
		}, metrics.CacheTotal, logger)
		cachePinger = cache
	}

	repo := object.New(reader)
	a.Catalog = cataloguc.New(repo)
	a.Search = searchuc.New(repo)
	a.Proximity = proximityuc.New(repo, a.Catalog, cfg.Catalog.MaxRadiusArcmin)
	a.Health = healthuc.New(store, cachePinger)

	logger.Info("Catalog opened",
		zap.String("path", cfg.Catalog.Path),
		zap.Bool("cache", cache != nil),
	)
	return a, nil
}

// Close releases the catalog and cache connections.
func (a *App) Close() error {
	if a.valkey != nil {
		a.valkey.Close()
	}
	if err := a.store.Close(); err != nil {
		return errors.Wrap(err, "close catalog")
	}
	return nil
}
