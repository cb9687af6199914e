package result

import (
	"testing"

	"github.com/kailas-cloud/ngcdex/internal/domain/dso"
)

func obj(t *testing.T, name string) dso.Dso {
	t.Helper()
	d, err := dso.New(dso.Attrs{Name: name, Type: "G"})
	if err != nil {
		t.Fatalf("dso.New: %v", err)
	}
	return d
}

func TestNew(t *testing.T) {
	n := New(obj(t, "NGC0521"), 0.18)
	if n.Object().Name() != "NGC0521" {
		t.Errorf("Object() = %q", n.Object().Name())
	}
	if n.Distance() != 0.18 {
		t.Errorf("Distance() = %f", n.Distance())
	}
}

func TestSort(t *testing.T) {
	hits := []Neighbor{
		New(obj(t, "IC0001"), 0.74),
		New(obj(t, "NGC0003"), 0.18),
		New(obj(t, "NGC0002"), 0.18),
		New(obj(t, "NGC0001"), 0.05),
	}
	Sort(hits)

	want := []string{"NGC0001", "NGC0002", "NGC0003", "IC0001"}
	for i, w := range want {
		if hits[i].Object().Name() != w {
			t.Errorf("hits[%d] = %s, want %s", i, hits[i].Object().Name(), w)
		}
	}
}

