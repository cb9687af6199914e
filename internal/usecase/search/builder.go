package search

import (
	"github.com/cockroachdb/errors"

	"github.com/kailas-cloud/ngcdex/internal/db"
	"github.com/kailas-cloud/ngcdex/internal/domain"
	"github.com/kailas-cloud/ngcdex/internal/domain/dso"
	"github.com/kailas-cloud/ngcdex/internal/domain/search/criteria"
	"github.com/kailas-cloud/ngcdex/internal/domain/search/filter"
	"github.com/kailas-cloud/ngcdex/internal/domain/sky"
)

// Build translates validated criteria into a store query. It never touches
// storage; an empty criteria set selects the whole catalog.
func Build(c criteria.Criteria) (db.ObjectQuery, error) {
	b := &builder{}

	switch c.Catalog {
	case criteria.CatalogNGC, criteria.CatalogIC:
		b.must(filter.NewPrefix(filter.KeyName, c.Catalog))
	case criteria.CatalogMessier:
		b.mustNot(filter.NewMissing(filter.KeyMessier))
		b.order = filter.OrderMessier
	}

	if c.Group != "" {
		types := dso.Group(c.Group).Types()
		if len(types) > 0 {
			codes := make([]string, len(types))
			for i, t := range types {
				codes[i] = string(t)
			}
			b.must(filter.NewIn(filter.KeyType, codes...))
		}
	}
	if len(c.Types) > 0 {
		b.must(filter.NewIn(filter.KeyType, c.Types...))
	}
	if len(c.Constellations) > 0 {
		b.must(filter.NewIn(filter.KeyConstellation, c.Constellations...))
	}

	if c.MinSize != nil {
		b.must(filter.NewRange(filter.KeyMajorAxis, filter.AtLeast(*c.MinSize)))
	}
	if c.MaxSize != nil {
		below, err := filter.NewRange(filter.KeyMajorAxis, filter.Below(*c.MaxSize))
		if err != nil {
			return db.ObjectQuery{}, err
		}
		missing, err := filter.NewMissing(filter.KeyMajorAxis)
		if err != nil {
			return db.ObjectQuery{}, err
		}
		b.must(filter.NewAny(below, missing))
	}

	b.bounds(filter.KeyBMag, c.MinBMag, c.MaxBMag)
	b.bounds(filter.KeyVMag, c.MinVMag, c.MaxVMag)

	if err := b.rightAscension(c.MinRA, c.MaxRA); err != nil {
		return db.ObjectQuery{}, err
	}
	if err := b.declination(c.MinDec, c.MaxDec); err != nil {
		return db.ObjectQuery{}, err
	}

	if c.NameContains != "" {
		b.must(filter.NewContains(filter.KeyCommonNames, c.NameContains))
	}
	if c.HasCommonName != nil {
		if *c.HasCommonName {
			b.mustNot(filter.NewMissing(filter.KeyCommonNames))
		} else {
			b.must(filter.NewMissing(filter.KeyCommonNames))
		}
	}

	if c.Addendum != nil {
		b.must(filter.NewFlag(filter.KeyAddendum, *c.Addendum))
	}

	if b.err != nil {
		return db.ObjectQuery{}, b.err
	}
	expr, err := filter.NewExpression(b.mustConds, b.shouldConds, b.mustNotConds)
	if err != nil {
		return db.ObjectQuery{}, errors.Mark(err, domain.ErrInvalidCriteria)
	}
	return db.ObjectQuery{Filters: expr, Order: b.order}, nil
}

// builder collects conditions; the first constructor error sticks.
type builder struct {
	mustConds    []filter.Condition
	shouldConds  []filter.Condition
	mustNotConds []filter.Condition
	order        filter.Order
	err          error
}

func (b *builder) must(c filter.Condition, err error) {
	b.add(&b.mustConds, c, err)
}

func (b *builder) should(c filter.Condition, err error) {
	b.add(&b.shouldConds, c, err)
}

func (b *builder) mustNot(c filter.Condition, err error) {
	b.add(&b.mustNotConds, c, err)
}

func (b *builder) add(dst *[]filter.Condition, c filter.Condition, err error) {
	if b.err != nil {
		return
	}
	if err != nil {
		b.err = err
		return
	}
	*dst = append(*dst, c)
}

func (b *builder) bounds(key string, lo, hi *float64) {
	switch {
	case lo != nil && hi != nil:
		b.must(filter.NewRange(key, filter.Between(*lo, *hi)))
	case lo != nil:
		b.must(filter.NewRange(key, filter.AtLeast(*lo)))
	case hi != nil:
		b.must(filter.NewRange(key, filter.AtMost(*hi)))
	}
}

// rightAscension adds the RA bounds. When min is past max the range wraps
// through 0h and becomes a two-range union in the should group.
func (b *builder) rightAscension(minText, maxText string) error {
	if minText == "" && maxText == "" {
		return nil
	}
	lo, hi := 0.0, 0.0
	var err error
	if minText != "" {
		if lo, err = sky.ParseRA(minText); err != nil {
			return errors.Mark(err, domain.ErrInvalidCriteria)
		}
	}
	if maxText != "" {
		if hi, err = sky.ParseRA(maxText); err != nil {
			return errors.Mark(err, domain.ErrInvalidCriteria)
		}
	}

	switch {
	case maxText == "":
		b.must(filter.NewRange(filter.KeyRA, filter.AtLeast(lo)))
		return nil
	case minText == "":
		b.must(filter.NewRange(filter.KeyRA, filter.AtMost(hi)))
		return nil
	}

	r := sky.RAInterval(lo, hi)
	if !r.IsSplit() {
		iv := r.Intervals()[0]
		b.must(filter.NewRange(filter.KeyRA, filter.Between(iv.Lo, iv.Hi)))
		return nil
	}
	for _, iv := range r.Intervals() {
		b.should(filter.NewRange(filter.KeyRA, filter.Between(iv.Lo, iv.Hi)))
	}
	return nil
}

func (b *builder) declination(minText, maxText string) error {
	var lo, hi *float64
	if minText != "" {
		v, err := sky.ParseDec(minText)
		if err != nil {
			return errors.Mark(err, domain.ErrInvalidCriteria)
		}
		lo = &v
	}
	if maxText != "" {
		v, err := sky.ParseDec(maxText)
		if err != nil {
			return errors.Mark(err, domain.ErrInvalidCriteria)
		}
		hi = &v
	}
	b.bounds(filter.KeyDec, lo, hi)
	return nil
}
