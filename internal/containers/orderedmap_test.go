package containers

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOrderedMapLastWriteWins(t *testing.T) {
	m := NewOrderedMap[string, string]()
	m.Set("Asha", "Stage")
	m.Set("Ben", "Sound")
	m.Set("Asha", "Tickets")

	if v, ok := m.Get("Asha"); !ok || v != "Tickets" {
		t.Errorf("Get(Asha) = (%q, %v), want (\"Tickets\", true)", v, ok)
	}
	if diff := cmp.Diff([]string{"Asha", "Ben"}, m.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
	if _, ok := m.Get("Cara"); ok {
		t.Error("Get(Cara) should miss")
	}
}

func TestOrderedMapZeroValue(t *testing.T) {
	var m OrderedMap[string, int]
	if _, ok := m.Get("Asha"); ok {
		t.Error("Get() on zero map should miss")
	}

	m.Set("Asha", 1)
	m.Set("Ben", 2)
	if v, ok := m.Get("Ben"); !ok || v != 2 {
		t.Errorf("Get(Ben) = (%d, %v), want (2, true)", v, ok)
	}
	if diff := cmp.Diff([]string{"Asha", "Ben"}, m.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}
