package db

import (
	"context"
	"time"

	"github.com/kailas-cloud/ngcdex/internal/domain/search/filter"
)

// Catalog is the read-only catalog store facade combining the sub-interfaces.
type Catalog interface {
	Pinger
	CatalogReader
	Close() error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CatalogReader is the store adapter consumed by the query core.
// Lookups of absent keys return ErrKeyNotFound.
type CatalogReader interface {
	// FetchByKey returns the primary row of a canonical name.
	FetchByKey(ctx context.Context, key string) (ObjectRow, error)
	// FetchAliases returns the cross-catalog identifiers of a canonical name.
	FetchAliases(ctx context.Context, key string) ([]AliasRow, error)
	// FetchCommonNames returns the common names of a canonical name, in catalog order.
	FetchCommonNames(ctx context.Context, key string) ([]string, error)
	// FetchAliasTarget maps a canonical alias (e.g. "M001") to a canonical name.
	FetchAliasTarget(ctx context.Context, alias string) (string, error)
	// FetchByPredicates returns every row matching the query.
	FetchByPredicates(ctx context.Context, q ObjectQuery) ([]ObjectRow, error)
}

// KVStore provides simple key-value operations.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// ObjectQuery is a predicate set plus result ordering.
type ObjectQuery struct {
	Filters filter.Expression
	Order   filter.Order
}

// ObjectRow is a primary catalog row. Nil pointers are unknown values.
// Angles are radians, sizes arcminutes.
type ObjectRow struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	RA            *float64 `json:"ra,omitempty"`
	Dec           *float64 `json:"dec,omitempty"`
	Constellation string   `json:"const,omitempty"`

	MajorAxis     *float64 `json:"majax,omitempty"`
	MinorAxis     *float64 `json:"minax,omitempty"`
	PositionAngle *float64 `json:"pa,omitempty"`

	BMag              *float64 `json:"bmag,omitempty"`
	VMag              *float64 `json:"vmag,omitempty"`
	JMag              *float64 `json:"jmag,omitempty"`
	HMag              *float64 `json:"hmag,omitempty"`
	KMag              *float64 `json:"kmag,omitempty"`
	SurfaceBrightness *float64 `json:"sbrightn,omitempty"`
	Hubble            string   `json:"hubble,omitempty"`

	Parallax       *float64 `json:"parallax,omitempty"`
	PMRA           *float64 `json:"pmra,omitempty"`
	PMDec          *float64 `json:"pmdec,omitempty"`
	RadialVelocity *float64 `json:"radvel,omitempty"`
	Redshift       *float64 `json:"redshift,omitempty"`

	CStarUMag  *float64 `json:"cstarumag,omitempty"`
	CStarBMag  *float64 `json:"cstarbmag,omitempty"`
	CStarVMag  *float64 `json:"cstarvmag,omitempty"`
	CStarNames string   `json:"cstarnames,omitempty"`

	NEDNotes     string `json:"nednotes,omitempty"`
	OpenNGCNotes string `json:"ongcnotes,omitempty"`
	NotNGC       bool   `json:"notngc,omitempty"`
}

// HasCoordinates reports whether both RA and Dec are known.
func (r ObjectRow) HasCoordinates() bool { return r.RA != nil && r.Dec != nil }

// AliasKind is the catalog family of an alias row.
type AliasKind string

// Alias kinds.
const (
	AliasMessier AliasKind = "messier"
	AliasNGC     AliasKind = "ngc"
	AliasIC      AliasKind = "ic"
	AliasOther   AliasKind = "other"
)

// AliasRow is one cross-catalog identifier of an object.
type AliasRow struct {
	Kind  AliasKind `json:"kind"`
	Value string    `json:"value"`
}
