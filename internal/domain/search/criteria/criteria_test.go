package criteria

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/kailas-cloud/ngcdex/internal/domain"
)

func ptr(f float64) *float64 { return &f }

func TestIsEmpty(t *testing.T) {
	if !(Criteria{}).IsEmpty() {
		t.Error("zero criteria should be empty")
	}
	if !(Criteria{Catalog: "all"}).IsEmpty() {
		t.Error("catalog all should count as empty")
	}
	if !(Criteria{Group: " ALL "}).IsEmpty() {
		t.Error("group all should count as empty")
	}
	addendum := false
	if (Criteria{Addendum: &addendum}).IsEmpty() {
		t.Error("criteria with addendum flag is not empty")
	}
	if (Criteria{MaxVMag: ptr(10)}).IsEmpty() {
		t.Error("criteria with magnitude bound is not empty")
	}
}

func TestNormalized(t *testing.T) {
	c, err := Criteria{
		Catalog:        " ngc ",
		Group:          "Galaxies",
		Types:          []string{"G", " GPair"},
		Constellations: []string{"aql", "BOO"},
		NameContains:   "  whirlpool ",
	}.Normalized()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Catalog != CatalogNGC {
		t.Errorf("catalog = %q", c.Catalog)
	}
	if c.Group != "galaxies" {
		t.Errorf("group = %q", c.Group)
	}
	if c.Types[1] != "GPair" {
		t.Errorf("types = %v", c.Types)
	}
	if c.Constellations[0] != "Aql" || c.Constellations[1] != "Boo" {
		t.Errorf("constellations = %v", c.Constellations)
	}
	if c.NameContains != "whirlpool" {
		t.Errorf("name = %q", c.NameContains)
	}
}

func TestNormalized_Invalid(t *testing.T) {
	tests := []struct {
		name string
		c    Criteria
	}{
		{"unknown catalog", Criteria{Catalog: "UGC"}},
		{"unknown type", Criteria{Types: []string{"Blob"}}},
		{"unknown group", Criteria{Group: "stars"}},
		{"bad constellation", Criteria{Constellations: []string{"Aquila"}}},
		{"NaN magnitude", Criteria{MaxVMag: ptr(math.NaN())}},
		{"infinite size", Criteria{MinSize: ptr(math.Inf(1))}},
		{"negative size", Criteria{MaxSize: ptr(-1)}},
		{"bad ra", Criteria{MinRA: "25:00:00"}},
		{"bad dec", Criteria{MaxDec: "+95:00:00"}},
		{"decimal ra", Criteria{MinRA: "12.5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.c.Normalized()
			if !errors.Is(err, domain.ErrInvalidCriteria) {
				t.Fatalf("expected ErrInvalidCriteria, got %v", err)
			}
		})
	}
}

func TestNormalized_ContradictoryBoundsAreValid(t *testing.T) {
	_, err := Criteria{MinVMag: ptr(12), MaxVMag: ptr(5), MinDec: "+10:00:00", MaxDec: "-10:00:00"}.Normalized()
	if err != nil {
		t.Fatalf("contradictory bounds should not be an error: %v", err)
	}
}

func TestNormalized_GroupAllIsUnset(t *testing.T) {
	c, err := Criteria{Group: "All"}.Normalized()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Group != "" {
		t.Errorf("group = %q, want empty", c.Group)
	}
}
