package filter

import "fmt"

// MaxConditionsPerGroup is the maximum number of conditions per filter group.
const MaxConditionsPerGroup = 32

// Keys understood by catalog stores.
const (
	KeyName          = "name"
	KeyType          = "type"
	KeyConstellation = "constellation"
	KeyMajorAxis     = "major_axis"
	KeyBMag          = "bmag"
	KeyVMag          = "vmag"
	KeyRA            = "ra"
	KeyDec           = "dec"
	KeyMessier       = "messier"
	KeyCommonNames   = "common_names"
	KeyAddendum      = "addendum"
)

// Expression is a structured filter with must/should/must_not boolean semantics.
// All must conditions hold, at least one should condition holds (when any are
// given) and no must_not condition holds.
type Expression struct {
	must    []Condition
	should  []Condition
	mustNot []Condition
}

// NewExpression validates and creates a filter Expression.
func NewExpression(must, should, mustNot []Condition) (Expression, error) {
	if len(must) > MaxConditionsPerGroup {
		return Expression{}, fmt.Errorf("too many must conditions (max %d)", MaxConditionsPerGroup)
	}
	if len(should) > MaxConditionsPerGroup {
		return Expression{}, fmt.Errorf("too many should conditions (max %d)", MaxConditionsPerGroup)
	}
	if len(mustNot) > MaxConditionsPerGroup {
		return Expression{}, fmt.Errorf("too many must_not conditions (max %d)", MaxConditionsPerGroup)
	}
	return Expression{must: must, should: should, mustNot: mustNot}, nil
}

// Must returns the must conditions.
func (e Expression) Must() []Condition { return e.must }

// Should returns the should conditions.
func (e Expression) Should() []Condition { return e.should }

// MustNot returns the must-not conditions.
func (e Expression) MustNot() []Condition { return e.mustNot }

// IsEmpty reports whether the expression has no conditions.
func (e Expression) IsEmpty() bool {
	return len(e.must) == 0 && len(e.should) == 0 && len(e.mustNot) == 0
}

// Kind tells which predicate a Condition carries.
type Kind int

// Condition kinds.
const (
	KindMatch    Kind = iota + 1 // key = value
	KindIn                       // key is one of values
	KindRange                    // numeric bounds; unknown values never match
	KindPrefix                   // key starts with value
	KindContains                 // key contains value, case-insensitive
	KindMissing                  // key has no value
	KindAny                      // at least one nested condition holds
	KindFlag                     // boolean key equals Flag(); unset counts as false
)

// Condition is a single filter clause.
type Condition struct {
	kind      Kind
	key       string
	values    []string
	rangeExpr *Range
	any       []Condition
	flag      bool
}

// NewMatch creates an exact match condition.
func NewMatch(key, match string) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	if match == "" {
		return Condition{}, fmt.Errorf("match value is required for key %q", key)
	}
	return Condition{kind: KindMatch, key: key, values: []string{match}}, nil
}

// NewIn creates a set membership condition.
func NewIn(key string, values ...string) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	if len(values) == 0 {
		return Condition{}, fmt.Errorf("at least one value is required for key %q", key)
	}
	vs := make([]string, len(values))
	copy(vs, values)
	return Condition{kind: KindIn, key: key, values: vs}, nil
}

// NewRange creates a numeric range condition.
func NewRange(key string, r Range) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	return Condition{kind: KindRange, key: key, rangeExpr: &r}, nil
}

// NewPrefix creates a starts-with condition.
func NewPrefix(key, prefix string) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	if prefix == "" {
		return Condition{}, fmt.Errorf("prefix is required for key %q", key)
	}
	return Condition{kind: KindPrefix, key: key, values: []string{prefix}}, nil
}

// NewContains creates a case-insensitive substring condition.
func NewContains(key, substr string) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	if substr == "" {
		return Condition{}, fmt.Errorf("substring is required for key %q", key)
	}
	return Condition{kind: KindContains, key: key, values: []string{substr}}, nil
}

// NewMissing matches records where key has no value.
func NewMissing(key string) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	return Condition{kind: KindMissing, key: key}, nil
}

// NewFlag matches records whose boolean key equals set.
func NewFlag(key string, set bool) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	return Condition{kind: KindFlag, key: key, flag: set}, nil
}

// NewAny creates a disjunction of conditions.
func NewAny(conds ...Condition) (Condition, error) {
	if len(conds) == 0 {
		return Condition{}, fmt.Errorf("at least one condition is required")
	}
	if len(conds) > MaxConditionsPerGroup {
		return Condition{}, fmt.Errorf("too many any conditions (max %d)", MaxConditionsPerGroup)
	}
	cs := make([]Condition, len(conds))
	copy(cs, conds)
	return Condition{kind: KindAny, any: cs}, nil
}

// Kind returns the predicate kind.
func (c Condition) Kind() Kind { return c.kind }

// Key returns the field name.
func (c Condition) Key() string { return c.key }

// Match returns the value of a match, prefix or contains condition.
func (c Condition) Match() string {
	if len(c.values) == 0 {
		return ""
	}
	return c.values[0]
}

// Values returns the set of an in condition.
func (c Condition) Values() []string { return c.values }

// Range returns the numeric range expression.
func (c Condition) Range() *Range { return c.rangeExpr }

// Flag returns the wanted value of a flag condition.
func (c Condition) Flag() bool { return c.flag }

// Any returns the nested conditions of a disjunction.
func (c Condition) Any() []Condition { return c.any }

// IsMatch reports whether this is a match condition.
func (c Condition) IsMatch() bool { return c.kind == KindMatch }

// IsRange reports whether this is a range condition.
func (c Condition) IsRange() bool { return c.kind == KindRange }

// Range is a numeric range with gt/gte/lt/lte boundaries.
type Range struct {
	gt  *float64
	gte *float64
	lt  *float64
	lte *float64
}

// NewRangeFilter validates and creates a Range.
// At least one boundary required. gt/gte and lt/lte are mutually exclusive.
func NewRangeFilter(gt, gte, lt, lte *float64) (Range, error) {
	if gt == nil && gte == nil && lt == nil && lte == nil {
		return Range{}, fmt.Errorf("at least one range boundary is required")
	}
	if gt != nil && gte != nil {
		return Range{}, fmt.Errorf("cannot specify both gt and gte")
	}
	if lt != nil && lte != nil {
		return Range{}, fmt.Errorf("cannot specify both lt and lte")
	}
	return Range{gt: gt, gte: gte, lt: lt, lte: lte}, nil
}

// Between returns an inclusive [lo, hi] range.
func Between(lo, hi float64) Range {
	return Range{gte: &lo, lte: &hi}
}

// AtLeast returns an inclusive lower bound.
func AtLeast(lo float64) Range { return Range{gte: &lo} }

// AtMost returns an inclusive upper bound.
func AtMost(hi float64) Range { return Range{lte: &hi} }

// Below returns an exclusive upper bound.
func Below(hi float64) Range { return Range{lt: &hi} }

// GT returns the lower exclusive bound.
func (r Range) GT() *float64 { return r.gt }

// GTE returns the lower inclusive bound.
func (r Range) GTE() *float64 { return r.gte }

// LT returns the upper exclusive bound.
func (r Range) LT() *float64 { return r.lt }

// LTE returns the upper inclusive bound.
func (r Range) LTE() *float64 { return r.lte }

// Contains reports whether v satisfies every boundary.
func (r Range) Contains(v float64) bool {
	if r.gt != nil && !(v > *r.gt) {
		return false
	}
	if r.gte != nil && !(v >= *r.gte) {
		return false
	}
	if r.lt != nil && !(v < *r.lt) {
		return false
	}
	if r.lte != nil && !(v <= *r.lte) {
		return false
	}
	return true
}

// Order selects the ordering of a filtered listing.
type Order string

// Orders.
const (
	OrderCatalog Order = ""        // catalog row order
	OrderMessier Order = "messier" // ascending Messier number
)
