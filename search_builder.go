package ngcdex

import "context"

// SearchBuilder is a fluent builder for catalog listings.
// Every call narrows the result; the last call of a kind wins.
type SearchBuilder struct {
	client *Client
	crit   Criteria
}

// Catalog restricts the listing to NGC, IC or M (Messier).
func (b *SearchBuilder) Catalog(name string) *SearchBuilder {
	b.crit.Catalog = name
	return b
}

// Types restricts the listing to the given object type codes.
func (b *SearchBuilder) Types(codes ...string) *SearchBuilder {
	b.crit.Types = append(b.crit.Types, codes...)
	return b
}

// Galaxies restricts the listing to galaxies.
func (b *SearchBuilder) Galaxies() *SearchBuilder { return b.group(GroupGalaxies) }

// Clusters restricts the listing to star clusters and associations.
func (b *SearchBuilder) Clusters() *SearchBuilder { return b.group(GroupClusters) }

// Nebulae restricts the listing to nebulae, planetary nebulae and supernova remnants.
func (b *SearchBuilder) Nebulae() *SearchBuilder { return b.group(GroupNebulae) }

func (b *SearchBuilder) group(g string) *SearchBuilder {
	b.crit.Group = g
	return b
}

// Addendum keeps addendum objects outside NGC/IC (true) or only NGC/IC catalog objects (false).
func (b *SearchBuilder) Addendum(only bool) *SearchBuilder {
	b.crit.Addendum = &only
	return b
}

// In restricts the listing to the given constellations (three-letter codes).
func (b *SearchBuilder) In(constellations ...string) *SearchBuilder {
	b.crit.Constellations = append(b.crit.Constellations, constellations...)
	return b
}

// LargerThan keeps objects whose major axis is at least arcmin.
func (b *SearchBuilder) LargerThan(arcmin float64) *SearchBuilder {
	b.crit.MinSize = &arcmin
	return b
}

// SmallerThan keeps objects whose major axis is below arcmin or unknown.
func (b *SearchBuilder) SmallerThan(arcmin float64) *SearchBuilder {
	b.crit.MaxSize = &arcmin
	return b
}

// Size keeps objects with min <= major axis < max.
func (b *SearchBuilder) Size(minArcmin, maxArcmin float64) *SearchBuilder {
	return b.LargerThan(minArcmin).SmallerThan(maxArcmin)
}

// BrighterThanV keeps objects with V magnitude <= mag.
func (b *SearchBuilder) BrighterThanV(mag float64) *SearchBuilder {
	b.crit.MaxVMag = &mag
	return b
}

// FainterThanV keeps objects with V magnitude >= mag.
func (b *SearchBuilder) FainterThanV(mag float64) *SearchBuilder {
	b.crit.MinVMag = &mag
	return b
}

// BrighterThanB keeps objects with B magnitude <= mag.
func (b *SearchBuilder) BrighterThanB(mag float64) *SearchBuilder {
	b.crit.MaxBMag = &mag
	return b
}

// FainterThanB keeps objects with B magnitude >= mag.
func (b *SearchBuilder) FainterThanB(mag float64) *SearchBuilder {
	b.crit.MinBMag = &mag
	return b
}

// RA keeps objects with right ascension in [from, to], both HH:MM:SS.
// Either bound may be empty. from > to selects a range across 0h.
func (b *SearchBuilder) RA(from, to string) *SearchBuilder {
	b.crit.MinRA, b.crit.MaxRA = from, to
	return b
}

// Dec keeps objects with declination in [from, to], both +/-DD:MM:SS.
// Either bound may be empty.
func (b *SearchBuilder) Dec(from, to string) *SearchBuilder {
	b.crit.MinDec, b.crit.MaxDec = from, to
	return b
}

// Named keeps objects with a common name containing substr, ignoring case.
func (b *SearchBuilder) Named(substr string) *SearchBuilder {
	b.crit.NameContains = substr
	return b
}

// WithCommonName keeps objects that have (or, with false, lack) a common name.
func (b *SearchBuilder) WithCommonName(has bool) *SearchBuilder {
	b.crit.HasCommonName = &has
	return b
}

// Criteria returns the criteria built so far.
func (b *SearchBuilder) Criteria() Criteria {
	return b.crit
}

// Do runs the listing.
func (b *SearchBuilder) Do(ctx context.Context) ([]Object, error) {
	return b.client.List(ctx, b.crit)
}
