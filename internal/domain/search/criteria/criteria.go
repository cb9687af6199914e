// Package criteria defines the filter criteria accepted by catalog listings.
package criteria

import (
	"math"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/kailas-cloud/ngcdex/internal/domain"
	"github.com/kailas-cloud/ngcdex/internal/domain/dso"
	"github.com/kailas-cloud/ngcdex/internal/domain/sky"
)

// Catalog filters.
const (
	CatalogAll     = ""
	CatalogNGC     = "NGC"
	CatalogIC      = "IC"
	CatalogMessier = "M"
)

var constellationPattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// Criteria is an explicit set of optional listing filters. Zero fields are unset.
// All set fields combine with AND.
type Criteria struct {
	Catalog        string   // "", "all", "NGC", "IC" or "M"
	Group          string   // "", "all", "galaxies", "clusters" or "nebulae"
	Types          []string // object type codes, e.g. "G", "GPair"
	Constellations []string // three-letter codes, any case

	MinSize *float64 // major axis >= value (arcmin)
	MaxSize *float64 // major axis < value, or unknown axis

	MinBMag *float64
	MaxBMag *float64
	MinVMag *float64
	MaxVMag *float64

	MinRA  string // "HH:MM:SS(.ss)"; MinRA > MaxRA wraps through 0h
	MaxRA  string
	MinDec string // "±DD:MM:SS(.s)"
	MaxDec string

	NameContains  string // substring of any common name
	HasCommonName *bool

	// Addendum selects addendum objects (true) or main NGC/IC catalog rows (false).
	Addendum *bool
}

// IsEmpty reports whether no filter is set.
func (c Criteria) IsEmpty() bool {
	return c.catalog() == CatalogAll && c.group() == "" && len(c.Types) == 0 && len(c.Constellations) == 0 &&
		c.MinSize == nil && c.MaxSize == nil &&
		c.MinBMag == nil && c.MaxBMag == nil && c.MinVMag == nil && c.MaxVMag == nil &&
		c.MinRA == "" && c.MaxRA == "" && c.MinDec == "" && c.MaxDec == "" &&
		c.NameContains == "" && c.HasCommonName == nil && c.Addendum == nil
}

// Normalized validates the criteria and returns a copy with canonical spelling:
// uppercase catalog, lowercase type group, constellations capitalized.
func (c Criteria) Normalized() (Criteria, error) {
	out := c
	out.Catalog = c.catalog()
	switch out.Catalog {
	case CatalogAll, CatalogNGC, CatalogIC, CatalogMessier:
	default:
		return Criteria{}, errors.WithHint(
			domain.InvalidCriteria("catalog %q", c.Catalog),
			"catalog must be one of NGC, IC, M",
		)
	}

	out.Group = c.group()
	if out.Group != "" {
		if _, ok := dso.ParseGroup(out.Group); !ok {
			return Criteria{}, errors.WithHint(
				domain.InvalidCriteria("type group %q", c.Group),
				"type group must be one of all, galaxies, clusters, nebulae",
			)
		}
	}

	out.Types = make([]string, 0, len(c.Types))
	for _, t := range c.Types {
		t = strings.TrimSpace(t)
		if _, ok := dso.ParseType(t); !ok {
			return Criteria{}, domain.InvalidCriteria("unknown object type %q", t)
		}
		out.Types = append(out.Types, t)
	}

	out.Constellations = make([]string, 0, len(c.Constellations))
	for _, con := range c.Constellations {
		con = strings.TrimSpace(con)
		if !constellationPattern.MatchString(con) {
			return Criteria{}, domain.InvalidCriteria("constellation %q must be a three-letter code", con)
		}
		out.Constellations = append(out.Constellations, strings.ToUpper(con[:1])+strings.ToLower(con[1:]))
	}

	numbers := []struct {
		name string
		v    *float64
	}{
		{"min size", c.MinSize}, {"max size", c.MaxSize},
		{"min B magnitude", c.MinBMag}, {"max B magnitude", c.MaxBMag},
		{"min V magnitude", c.MinVMag}, {"max V magnitude", c.MaxVMag},
	}
	for _, n := range numbers {
		if n.v != nil && (math.IsNaN(*n.v) || math.IsInf(*n.v, 0)) {
			return Criteria{}, domain.InvalidCriteria("%s must be a finite number", n.name)
		}
	}
	if c.MinSize != nil && *c.MinSize < 0 {
		return Criteria{}, domain.InvalidCriteria("min size must not be negative")
	}
	if c.MaxSize != nil && *c.MaxSize < 0 {
		return Criteria{}, domain.InvalidCriteria("max size must not be negative")
	}

	for _, ra := range []string{c.MinRA, c.MaxRA} {
		if ra == "" {
			continue
		}
		if _, err := sky.ParseRA(ra); err != nil {
			return Criteria{}, invalid(err)
		}
	}
	for _, dec := range []string{c.MinDec, c.MaxDec} {
		if dec == "" {
			continue
		}
		if _, err := sky.ParseDec(dec); err != nil {
			return Criteria{}, invalid(err)
		}
	}

	out.NameContains = strings.TrimSpace(c.NameContains)
	return out, nil
}

func (c Criteria) group() string {
	g := strings.ToLower(strings.TrimSpace(c.Group))
	if g == string(dso.GroupAll) {
		return ""
	}
	return g
}

func (c Criteria) catalog() string {
	cat := strings.ToUpper(strings.TrimSpace(c.Catalog))
	if cat == "ALL" {
		return CatalogAll
	}
	return cat
}

// invalid marks a codec error as invalid criteria while keeping the original cause.
func invalid(err error) error {
	return errors.Mark(errors.Wrap(err, "invalid criteria"), domain.ErrInvalidCriteria)
}
