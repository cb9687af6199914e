// Package ngcdex is an embeddable, read-only query engine for the OpenNGC
// catalog of deep sky objects.
package ngcdex

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/kailas-cloud/ngcdex/internal/app"
	"github.com/kailas-cloud/ngcdex/internal/config"
	healthuc "github.com/kailas-cloud/ngcdex/internal/usecase/health"
	"github.com/kailas-cloud/ngcdex/internal/usecase/proximity"
)

// Client is the ngcdex entry point. It is safe for concurrent use.
type Client struct {
	app *app.App
}

// New opens the catalog and, when configured, connects the row cache.
func New(opts ...Option) (*Client, error) {
	cc := &clientConfig{}
	for _, o := range opts {
		o(cc)
	}
	if cc.path == "" {
		return nil, errors.New("ngcdex: catalog path required (use WithSQLite)")
	}
	if cc.logger == nil {
		cc.logger = zap.NewNop()
	}

	cfg := config.Default()
	cfg.Catalog.Path = cc.path
	if cc.maxRadius > 0 {
		cfg.Catalog.MaxRadiusArcmin = cc.maxRadius
	}
	if cc.cacheAddr != "" {
		cfg.Cache.Enabled = true
		cfg.Cache.Addrs = []string{cc.cacheAddr}
		cfg.Cache.Password = cc.cachePass
		if secs := int(cc.cacheTTL.Seconds()); secs > 0 {
			cfg.Cache.TTLSec = secs
		}
	}

	a, err := app.New(context.Background(), cfg, cc.logger, cc.appOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "ngcdex")
	}
	return &Client{app: a}, nil
}

// Close releases the catalog and cache connections.
func (c *Client) Close() error {
	return c.app.Close()
}

// Ping reports whether the catalog is readable. A failing cache is not an error.
func (c *Client) Ping(ctx context.Context) error {
	report := c.app.Health.Check(ctx)
	if report.Status == healthuc.Unhealthy {
		return errors.New("ngcdex: catalog unavailable")
	}
	return nil
}

// Get describes the object named by any recognized designation, following
// duplicate records to the object they describe.
func (c *Client) Get(ctx context.Context, name string) (Object, error) {
	return c.app.Catalog.Get(ctx, name)
}

// GetRecord returns the record of name as stored, duplicates included.
func (c *Client) GetRecord(ctx context.Context, name string) (Object, error) {
	return c.app.Catalog.GetRecord(ctx, name)
}

// Resolve returns the canonical name of the object named by name.
func (c *Client) Resolve(ctx context.Context, name string) (string, error) {
	return c.app.Catalog.Resolve(ctx, name)
}

// List returns every object matching crit, in catalog order
// (Messier order for the M catalog).
func (c *Client) List(ctx context.Context, crit Criteria) ([]Object, error) {
	return c.app.Search.List(ctx, crit)
}

// Search starts a fluent listing query.
func (c *Client) Search() *SearchBuilder {
	return &SearchBuilder{client: c}
}

// Nearby returns objects within radius arcminutes of center, closest first.
// catalog is "", CatalogAll, CatalogNGC or CatalogIC.
func (c *Client) Nearby(ctx context.Context, center Coordinates, radius float64, catalog string) ([]Neighbor, error) {
	return c.app.Proximity.Nearby(ctx, center, radius, catalog)
}

// Neighbors returns objects within radius arcminutes of the named object,
// closest first. The object itself is excluded.
func (c *Client) Neighbors(ctx context.Context, name string, radius float64, catalog string) ([]Neighbor, error) {
	return c.app.Proximity.Neighbors(ctx, name, radius, catalog)
}

// SeparationBetween returns the apparent distance between two objects already
// at hand, without a catalog lookup.
func SeparationBetween(a, b Object) (Separation, error) {
	return proximity.Between(a, b)
}

// Separation returns the apparent distance between two named objects.
func (c *Client) Separation(ctx context.Context, a, b string) (Separation, error) {
	return c.app.Proximity.Separation(ctx, a, b)
}
