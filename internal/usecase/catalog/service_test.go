package catalog

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/kailas-cloud/ngcdex/internal/domain"
	"github.com/kailas-cloud/ngcdex/internal/domain/dso"
)

// --- Mocks ---

type record struct {
	typ string
	dup string
}

type mockRepo struct {
	records map[string]record
	aliases map[string]string
	err     error
	hops    int
}

func (m *mockRepo) Get(_ context.Context, name string) (dso.Dso, error) {
	if m.err != nil {
		return dso.Dso{}, m.err
	}
	rec, ok := m.records[name]
	if !ok {
		return dso.Dso{}, domain.ObjectNotFound(name)
	}
	return dso.New(dso.Attrs{Name: name, Type: dso.Type(rec.typ)})
}

func (m *mockRepo) AliasTarget(_ context.Context, alias string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	name, ok := m.aliases[alias]
	if !ok {
		return "", domain.ObjectNotFound(alias)
	}
	return name, nil
}

func (m *mockRepo) DuplicateOf(_ context.Context, name string) (string, bool, error) {
	m.hops++
	if m.err != nil {
		return "", false, m.err
	}
	rec, ok := m.records[name]
	if !ok {
		return "", false, domain.ObjectNotFound(name)
	}
	if rec.typ != "Dup" {
		return "", false, nil
	}
	return rec.dup, true, nil
}

func newRepo() *mockRepo {
	return &mockRepo{
		records: map[string]record{
			"NGC0001": {typ: "G"},
			"NGC0521": {typ: "G"},
			"NGC0526": {typ: "Dup", dup: "NGC0521"},
			"IC0010":  {typ: "G"},
			"IC0011":  {typ: "Dup", dup: "IC0010"},
			"NGC1952": {typ: "SNR"},
			"Mel022":  {typ: "OCl"},
		},
		aliases: map[string]string{
			"M001":   "NGC1952",
			"MEL022": "Mel022",
			"M045":   "Mel022",
		},
	}
}

// --- Tests ---

func TestResolve(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"ngc1", "NGC0001"},
		{" NGC 0001 ", "NGC0001"},
		{"M1", "NGC1952"},
		{"m 45", "Mel022"},
		{"mel22", "Mel022"},
		{"NGC526", "NGC0521"},
		{"IC11", "IC0010"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := New(newRepo()).Resolve(context.Background(), tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestResolve_DesignationListedOnAnotherRecord(t *testing.T) {
	repo := newRepo()
	repo.records["IC0999"] = record{typ: "G"}
	repo.aliases["NGC9999"] = "IC0999"

	svc := New(repo)
	for _, raw := range []string{"NGC9999", "ngc 9999"} {
		got, err := svc.Resolve(context.Background(), raw)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", raw, err)
		}
		if got != "IC0999" {
			t.Errorf("Resolve(%q) = %q, want IC0999", raw, got)
		}
	}

	d, err := svc.GetRecord(context.Background(), "NGC9999")
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if d.Name() != "IC0999" {
		t.Errorf("GetRecord name = %q", d.Name())
	}
}

func TestLookup_AliasErrorIsNotMasked(t *testing.T) {
	repo := newRepo()
	repo.err = errors.New("database is locked")
	_, err := New(repo).Lookup(context.Background(), "NGC1")
	if err == nil || errors.Is(err, domain.ErrObjectNotFound) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		raw    string
		target error
	}{
		{"NGC9999", domain.ErrObjectNotFound},
		{"M110", domain.ErrObjectNotFound},
		{"NGC0001A1", domain.ErrFormat},
		{"XYZ123", domain.ErrUnknownCatalog},
		{"", domain.ErrFormat},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, err := New(newRepo()).Resolve(context.Background(), tt.raw)
			if !errors.Is(err, tt.target) {
				t.Fatalf("expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestResolve_DuplicateChain(t *testing.T) {
	repo := newRepo()
	repo.records["IC0001"] = record{typ: "Dup", dup: "IC0002"}
	repo.records["IC0002"] = record{typ: "Dup", dup: "NGC0001"}

	got, err := New(repo).Resolve(context.Background(), "IC1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "NGC0001" {
		t.Errorf("got %q", got)
	}
	if repo.hops != 3 {
		t.Errorf("expected 3 hops, got %d", repo.hops)
	}
}

func TestResolve_CorruptReferences(t *testing.T) {
	tests := []struct {
		name    string
		records map[string]record
	}{
		{"self cycle", map[string]record{"NGC0100": {typ: "Dup", dup: "NGC0100"}}},
		{"two cycle", map[string]record{
			"NGC0100": {typ: "Dup", dup: "NGC0101"},
			"NGC0101": {typ: "Dup", dup: "NGC100"},
		}},
		{"dangling", map[string]record{"NGC0100": {typ: "Dup", dup: "NGC0200"}}},
		{"malformed", map[string]record{"NGC0100": {typ: "Dup", dup: "not a name"}}},
		{"non-primary", map[string]record{"NGC0100": {typ: "Dup", dup: "M001"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{records: tt.records}
			_, err := New(repo).Resolve(context.Background(), "NGC100")
			if !errors.Is(err, domain.ErrCorruptCatalog) {
				t.Fatalf("expected ErrCorruptCatalog, got %v", err)
			}
		})
	}
}

func TestLookup_KeepsDuplicate(t *testing.T) {
	got, err := New(newRepo()).Lookup(context.Background(), "ngc 526")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "NGC0526" {
		t.Errorf("got %q", got)
	}
}

func TestGet(t *testing.T) {
	svc := New(newRepo())

	d, err := svc.Get(context.Background(), "ic11")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Name() != "IC0010" {
		t.Errorf("Get followed to %q", d.Name())
	}

	rec, err := svc.GetRecord(context.Background(), "ic11")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Name() != "IC0011" || !rec.Type().IsDuplicate() {
		t.Errorf("GetRecord = %s %s", rec.Name(), rec.Type())
	}
}

func TestGet_StoreError(t *testing.T) {
	repo := newRepo()
	repo.err = errors.New("disk I/O error")

	_, err := New(repo).Get(context.Background(), "NGC1")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, domain.ErrObjectNotFound) {
		t.Error("store failure must not look like not found")
	}
}
