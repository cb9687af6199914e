package result

import (
	"cmp"
	"slices"

	"github.com/kailas-cloud/ngcdex/internal/domain/dso"
)

// Neighbor is a single proximity hit: an object and its angular distance
// from the query center.
type Neighbor struct {
	object   dso.Dso
	distance float64
}

// New creates a proximity hit. distance is in degrees.
func New(object dso.Dso, distance float64) Neighbor {
	return Neighbor{object: object, distance: distance}
}

// Object returns the matched object.
func (n Neighbor) Object() dso.Dso { return n.object }

// Distance returns the angular distance in degrees.
func (n Neighbor) Distance() float64 { return n.distance }

// Sort orders hits by ascending distance, ties by canonical name.
func Sort(hits []Neighbor) {
	slices.SortStableFunc(hits, func(a, b Neighbor) int {
		if c := cmp.Compare(a.distance, b.distance); c != 0 {
			return c
		}
		return cmp.Compare(a.object.Name(), b.object.Name())
	})
}

