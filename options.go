package ngcdex

import (
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/ngcdex/internal/app"
)

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	path      string
	cacheAddr string
	cachePass string
	cacheTTL  time.Duration
	maxRadius float64
	logger    *zap.Logger
	appOpts   []app.Option
}

// WithSQLite opens the OpenNGC SQLite database at path.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.path = path
	}
}

// WithValkeyCache caches catalog rows in Valkey (or Redis) at addr.
// A zero ttl keeps the default of one day.
func WithValkeyCache(addr, password string, ttl time.Duration) Option {
	return func(c *clientConfig) {
		c.cacheAddr = addr
		c.cachePass = password
		c.cacheTTL = ttl
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

// WithMaxRadius sets the largest proximity radius accepted, in arcminutes.
func WithMaxRadius(arcmin float64) Option {
	return func(c *clientConfig) {
		c.maxRadius = arcmin
	}
}

// withAppOptions passes options to the composition root.
func withAppOptions(opts ...app.Option) Option {
	return func(c *clientConfig) {
		c.appOpts = append(c.appOpts, opts...)
	}
}
