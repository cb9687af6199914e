package dso

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/kailas-cloud/ngcdex/internal/domain"
	"github.com/kailas-cloud/ngcdex/internal/domain/sky"
)

func ngc1(t *testing.T) Dso {
	t.Helper()
	c, err := sky.Parse("00:07:15.84 +27:42:29.1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	d, err := New(Attrs{
		ID:            5596,
		Name:          "NGC0001",
		Type:          "G",
		Coordinates:   &c,
		Constellation: "Peg",
		Dimensions:    Dimensions{MajorAxis: Known(1.57), MinorAxis: Known(1.07), PositionAngle: Known(112)},
		Magnitudes:    Magnitudes{B: Known(13.69), V: Known(12.93), J: Known(10.78), H: Known(10.02), K: Known(9.76)},
		Hubble:        "Sb",
		Identifiers:   Identifiers{Other: []string{"2MASX J00071582+2742291", "UGC 00057"}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func TestDso_String(t *testing.T) {
	if got := ngc1(t).String(); got != "NGC0001, Galaxy in Peg" {
		t.Errorf("String = %q", got)
	}
}

func TestDso_Coordinates(t *testing.T) {
	d := ngc1(t)
	if d.RA() != "00:07:15.84" || d.Dec() != "+27:42:29.1" {
		t.Errorf("RA/Dec = %s %s", d.RA(), d.Dec())
	}
	if _, ok := d.Coordinates(); !ok {
		t.Error("expected coordinates")
	}

	noPos, err := New(Attrs{Name: "IC0011", Type: TypeDuplicate, Constellation: "Cas"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := noPos.Coordinates(); ok {
		t.Error("expected unknown coordinates")
	}
	if noPos.RA() != "N/A" || noPos.Dec() != "N/A" {
		t.Errorf("RA/Dec = %s %s", noPos.RA(), noPos.Dec())
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(Attrs{Type: "G"}); !errors.Is(err, domain.ErrCorruptCatalog) {
		t.Errorf("expected ErrCorruptCatalog for empty name, got %v", err)
	}
	if _, err := New(Attrs{Name: "NGC0001", Type: "Blob"}); !errors.Is(err, domain.ErrCorruptCatalog) {
		t.Errorf("expected ErrCorruptCatalog for unknown type, got %v", err)
	}
}

func TestDso_Immutable(t *testing.T) {
	names := []string{"Pleiades"}
	d, err := New(Attrs{Name: "Mel022", Type: "OCl", CommonNames: names})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	names[0] = "changed"
	got := d.CommonNames()
	if got[0] != "Pleiades" {
		t.Fatalf("input slice aliased: %v", got)
	}
	got[0] = "changed again"
	if d.CommonNames()[0] != "Pleiades" {
		t.Fatal("accessor slice aliased")
	}
}

func TestValue(t *testing.T) {
	if _, ok := Unknown().Get(); ok {
		t.Error("Unknown should not be known")
	}
	v, ok := Known(0).Get()
	if !ok || v != 0 {
		t.Error("Known(0) must be a known zero, not absent")
	}
	if Unknown().String() != "N/A" {
		t.Errorf("String = %q", Unknown().String())
	}
	if FromPtr(nil).IsKnown() {
		t.Error("FromPtr(nil) should be unknown")
	}
	if Known(2.5).Ptr() == nil || *Known(2.5).Ptr() != 2.5 {
		t.Error("Ptr mismatch")
	}
}

func TestDso_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(ngc1(t))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	for _, want := range []string{
		`"name":"NGC0001"`,
		`"type_description":"Galaxy"`,
		`"ra":"00:07:15.84"`,
		`"major_axis":1.57`,
		`"parallax":null`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON missing %s: %s", want, s)
		}
	}
	if strings.Contains(s, "central_star") {
		t.Errorf("central_star should be omitted: %s", s)
	}
}

func TestTypes(t *testing.T) {
	all := Types()
	if len(all) != 21 {
		t.Errorf("expected 21 types, got %d", len(all))
	}
	if _, ok := ParseType("GPair"); !ok {
		t.Error("GPair should be known")
	}
	if !TypeDuplicate.IsDuplicate() {
		t.Error("Dup should be duplicate")
	}
	if Type("XX").Description() != "XX" {
		t.Error("unknown description should echo code")
	}
}

func TestGroups(t *testing.T) {
	g, ok := ParseGroup(" Nebulae ")
	if !ok || g != GroupNebulae {
		t.Fatalf("ParseGroup = %q, %v", g, ok)
	}
	if got := g.Types(); len(got) != 7 || got[0] != "Cl+N" {
		t.Errorf("nebulae types = %v", got)
	}
	for _, typ := range append(GroupClusters.Types(), GroupGalaxies.Types()...) {
		if _, ok := ParseType(string(typ)); !ok {
			t.Errorf("group type %q is not a known type", typ)
		}
	}
	if all, ok := ParseGroup("ALL"); !ok || len(all.Types()) != 0 {
		t.Errorf("all = %q, %v, %v", all, ok, all.Types())
	}
	if _, ok := ParseGroup("stars"); ok {
		t.Error("stars should not be a group")
	}
	types := GroupGalaxies.Types()
	types[0] = "X"
	if GroupGalaxies.Types()[0] != "G" {
		t.Error("Types must return a copy")
	}
}
