package search

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/kailas-cloud/ngcdex/internal/domain"
	"github.com/kailas-cloud/ngcdex/internal/domain/search/criteria"
	"github.com/kailas-cloud/ngcdex/internal/domain/search/filter"
)

func ptr(f float64) *float64 { return &f }

func TestBuild_Empty(t *testing.T) {
	q, err := Build(criteria.Criteria{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.Filters.IsEmpty() {
		t.Error("empty criteria should select the whole catalog")
	}
	if q.Order != filter.OrderCatalog {
		t.Errorf("order = %q", q.Order)
	}
}

func TestBuild_Catalogs(t *testing.T) {
	q, err := Build(criteria.Criteria{Catalog: criteria.CatalogIC})
	if err != nil {
		t.Fatal(err)
	}
	must := q.Filters.Must()
	if len(must) != 1 || must[0].Kind() != filter.KindPrefix || must[0].Match() != "IC" {
		t.Errorf("unexpected IC filter %+v", must)
	}

	q, err = Build(criteria.Criteria{Catalog: criteria.CatalogMessier})
	if err != nil {
		t.Fatal(err)
	}
	if q.Order != filter.OrderMessier {
		t.Errorf("order = %q", q.Order)
	}
	not := q.Filters.MustNot()
	if len(not) != 1 || not[0].Kind() != filter.KindMissing || not[0].Key() != filter.KeyMessier {
		t.Errorf("unexpected Messier filter %+v", not)
	}
}

func TestBuild_TypeGroup(t *testing.T) {
	q, err := Build(criteria.Criteria{Group: "nebulae", Types: []string{"PN"}})
	if err != nil {
		t.Fatal(err)
	}
	must := q.Filters.Must()
	if len(must) != 2 {
		t.Fatalf("expected group and type conditions, got %+v", must)
	}
	if must[0].Kind() != filter.KindIn || must[0].Key() != filter.KeyType || len(must[0].Values()) != 7 {
		t.Errorf("unexpected group filter %+v", must[0])
	}
	if must[1].Values()[0] != "PN" {
		t.Errorf("unexpected type filter %+v", must[1])
	}

	q, err = Build(criteria.Criteria{Group: "all"})
	if err != nil {
		t.Fatal(err)
	}
	if !q.Filters.IsEmpty() {
		t.Error("group all should not restrict")
	}
}

func TestBuild_Addendum(t *testing.T) {
	for _, want := range []bool{true, false} {
		q, err := Build(criteria.Criteria{Addendum: &want})
		if err != nil {
			t.Fatal(err)
		}
		must := q.Filters.Must()
		if len(must) != 1 || must[0].Kind() != filter.KindFlag || must[0].Key() != filter.KeyAddendum {
			t.Fatalf("unexpected addendum filter %+v", must)
		}
		if must[0].Flag() != want {
			t.Errorf("flag = %v, want %v", must[0].Flag(), want)
		}
	}
}

func TestBuild_MaxSizeMatchesUnknownAxis(t *testing.T) {
	q, err := Build(criteria.Criteria{MaxSize: ptr(5)})
	if err != nil {
		t.Fatal(err)
	}
	must := q.Filters.Must()
	if len(must) != 1 || must[0].Kind() != filter.KindAny {
		t.Fatalf("expected a disjunction, got %+v", must)
	}
	alts := must[0].Any()
	if alts[0].Kind() != filter.KindRange || alts[0].Range().Contains(5) {
		t.Error("max size must be exclusive")
	}
	if alts[1].Kind() != filter.KindMissing {
		t.Error("max size must also match unknown axis")
	}
}

func TestBuild_Magnitudes(t *testing.T) {
	q, err := Build(criteria.Criteria{MinBMag: ptr(8), MaxVMag: ptr(10)})
	if err != nil {
		t.Fatal(err)
	}
	must := q.Filters.Must()
	if len(must) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(must))
	}
	if must[0].Key() != filter.KeyBMag || must[0].Range().GTE() == nil || *must[0].Range().GTE() != 8 {
		t.Errorf("bmag condition %+v", must[0])
	}
	if must[1].Key() != filter.KeyVMag || !must[1].Range().Contains(10) || must[1].Range().Contains(10.1) {
		t.Errorf("vmag condition %+v", must[1])
	}
}

func TestBuild_RAWrapsThroughZero(t *testing.T) {
	q, err := Build(criteria.Criteria{MinRA: "23:00:00", MaxRA: "01:00:00"})
	if err != nil {
		t.Fatal(err)
	}
	should := q.Filters.Should()
	if len(should) != 2 {
		t.Fatalf("expected two-range union, got %d conditions", len(should))
	}
	hour := math.Pi / 12
	if !should[0].Range().Contains(23.5*hour) || should[0].Range().Contains(12*hour) {
		t.Error("first range should cover 23h..24h")
	}
	if !should[1].Range().Contains(0.5*hour) || should[1].Range().Contains(2*hour) {
		t.Error("second range should cover 0h..1h")
	}
	if len(q.Filters.Must()) != 0 {
		t.Error("split range belongs to the should group")
	}
}

func TestBuild_RASingleInterval(t *testing.T) {
	q, err := Build(criteria.Criteria{MinRA: "01:00:00", MaxRA: "02:00:00"})
	if err != nil {
		t.Fatal(err)
	}
	if len(q.Filters.Should()) != 0 || len(q.Filters.Must()) != 1 {
		t.Fatalf("unexpected expression %+v", q.Filters)
	}

	q, err = Build(criteria.Criteria{MaxRA: "02:00:00"})
	if err != nil {
		t.Fatal(err)
	}
	r := q.Filters.Must()[0].Range()
	if r.GTE() != nil || r.LTE() == nil {
		t.Error("max only should be an upper bound")
	}
}

func TestBuild_Declination(t *testing.T) {
	q, err := Build(criteria.Criteria{MinDec: "-10:00:00", MaxDec: "+10:00:00"})
	if err != nil {
		t.Fatal(err)
	}
	r := q.Filters.Must()[0].Range()
	if !r.Contains(0) || r.Contains(math.Pi/2) {
		t.Error("dec range mismatch")
	}
}

func TestBuild_CommonNames(t *testing.T) {
	yes, no := true, false

	q, err := Build(criteria.Criteria{NameContains: "orion", HasCommonName: &yes})
	if err != nil {
		t.Fatal(err)
	}
	if c := q.Filters.Must()[0]; c.Kind() != filter.KindContains || c.Match() != "orion" {
		t.Errorf("contains condition %+v", c)
	}
	if len(q.Filters.MustNot()) != 1 {
		t.Error("with_name should exclude missing names")
	}

	q, err = Build(criteria.Criteria{HasCommonName: &no})
	if err != nil {
		t.Fatal(err)
	}
	if c := q.Filters.Must()[0]; c.Kind() != filter.KindMissing || c.Key() != filter.KeyCommonNames {
		t.Errorf("missing condition %+v", c)
	}
}

func TestBuild_BadCoordinates(t *testing.T) {
	_, err := Build(criteria.Criteria{MinDec: "10:00:00"})
	if !errors.Is(err, domain.ErrInvalidCriteria) {
		t.Fatalf("expected ErrInvalidCriteria, got %v", err)
	}
}
