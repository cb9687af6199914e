package ngcdex

import (
	"github.com/kailas-cloud/ngcdex/internal/domain"
	"github.com/kailas-cloud/ngcdex/internal/domain/dso"
	"github.com/kailas-cloud/ngcdex/internal/domain/search/criteria"
	"github.com/kailas-cloud/ngcdex/internal/domain/search/result"
	"github.com/kailas-cloud/ngcdex/internal/domain/sky"
)

// Object is an immutable deep sky object of the catalog.
type Object = dso.Dso

// ObjectType is an OpenNGC object type code, e.g. "G" or "PN".
type ObjectType = dso.Type

// Value is an optional measurement.
type Value = dso.Value

// Neighbor is a proximity hit: an object and its distance in degrees.
type Neighbor = result.Neighbor

// Separation is the apparent distance between two objects, in degrees.
type Separation = sky.Separation

// Coordinates is an equatorial position.
type Coordinates = sky.Coordinates

// Criteria is a set of optional listing filters. See Client.Search for a builder.
type Criteria = criteria.Criteria

// Catalog restrictions for Nearby and Neighbors.
const (
	CatalogAll = "all"
	CatalogNGC = "NGC"
	CatalogIC  = "IC"
)

// Type groups for Criteria.Group.
const (
	GroupAll      = string(dso.GroupAll)
	GroupGalaxies = string(dso.GroupGalaxies)
	GroupClusters = string(dso.GroupClusters)
	GroupNebulae  = string(dso.GroupNebulae)
)

// Errors returned by Client methods. Test with errors.Is.
var (
	ErrFormat          = domain.ErrFormat
	ErrUnknownCatalog  = domain.ErrUnknownCatalog
	ErrObjectNotFound  = domain.ErrObjectNotFound
	ErrCorruptCatalog  = domain.ErrCorruptCatalog
	ErrInvalidCriteria = domain.ErrInvalidCriteria
	ErrNoCoordinates   = domain.ErrNoCoordinates
)

// ParseCoordinates parses "HH:MM:SS.ss +/-DD:MM:SS.s".
func ParseCoordinates(text string) (Coordinates, error) {
	return sky.Parse(text)
}
