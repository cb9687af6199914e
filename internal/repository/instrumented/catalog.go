// Package instrumented wraps the catalog store with metrics and debug logging.
package instrumented

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/kailas-cloud/ngcdex/internal/db"
	"github.com/kailas-cloud/ngcdex/internal/metrics"
)

// Catalog records duration, outcome and row counts of every store call.
type Catalog struct {
	inner  db.CatalogReader
	logger *zap.Logger
}

// New wraps a catalog reader.
func New(inner db.CatalogReader, logger *zap.Logger) *Catalog {
	return &Catalog{inner: inner, logger: logger}
}

// FetchByKey delegates to the inner reader.
func (c *Catalog) FetchByKey(ctx context.Context, key string) (db.ObjectRow, error) {
	start := time.Now()
	row, err := c.inner.FetchByKey(ctx, key)
	c.observe(db.OpFetchObject, key, start, -1, err)
	return row, err //nolint:wrapcheck // transparent decorator
}

// FetchAliases delegates to the inner reader.
func (c *Catalog) FetchAliases(ctx context.Context, key string) ([]db.AliasRow, error) {
	start := time.Now()
	rows, err := c.inner.FetchAliases(ctx, key)
	c.observe(db.OpFetchAliases, key, start, -1, err)
	return rows, err //nolint:wrapcheck // transparent decorator
}

// FetchCommonNames delegates to the inner reader.
func (c *Catalog) FetchCommonNames(ctx context.Context, key string) ([]string, error) {
	start := time.Now()
	names, err := c.inner.FetchCommonNames(ctx, key)
	c.observe(db.OpFetchCommonNames, key, start, -1, err)
	return names, err //nolint:wrapcheck // transparent decorator
}

// FetchAliasTarget delegates to the inner reader.
func (c *Catalog) FetchAliasTarget(ctx context.Context, alias string) (string, error) {
	start := time.Now()
	name, err := c.inner.FetchAliasTarget(ctx, alias)
	c.observe(db.OpFetchAliasTarget, alias, start, -1, err)
	return name, err //nolint:wrapcheck // transparent decorator
}

// FetchByPredicates delegates to the inner reader and records the row count.
func (c *Catalog) FetchByPredicates(ctx context.Context, q db.ObjectQuery) ([]db.ObjectRow, error) {
	start := time.Now()
	rows, err := c.inner.FetchByPredicates(ctx, q)
	c.observe(db.OpFetchPredicates, "", start, len(rows), err)
	return rows, err //nolint:wrapcheck // transparent decorator
}

// observe records one call. rows < 0 means the call has no row count.
func (c *Catalog) observe(op, key string, start time.Time, rows int, err error) {
	duration := time.Since(start)
	status := "ok"
	switch {
	case errors.Is(err, db.ErrKeyNotFound):
		status = "not_found"
	case err != nil:
		status = "error"
	}

	metrics.StoreRequestsTotal.WithLabelValues(op, status).Inc()
	metrics.StoreRequestDuration.WithLabelValues(op).Observe(duration.Seconds())
	if rows >= 0 && err == nil {
		metrics.StoreRowsReturned.WithLabelValues(op).Observe(float64(rows))
	}

	if status == "error" {
		c.logger.Error("Catalog store call failed",
			zap.String("op", op),
			zap.String("key", key),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return
	}
	c.logger.Debug("Catalog store call",
		zap.String("op", op),
		zap.String("key", key),
		zap.String("status", status),
		zap.Duration("duration", duration),
		zap.Int("rows", rows),
	)
}
