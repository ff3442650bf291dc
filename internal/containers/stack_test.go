package containers

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStackLIFO(t *testing.T) {
	s := NewStack[string]()
	for _, v := range []string{"A", "B", "C"} {
		s.Push(v)
	}

	if diff := cmp.Diff([]string{"A", "B", "C"}, s.PeekAll()); diff != "" {
		t.Errorf("PeekAll() mismatch (-want +got):\n%s", diff)
	}

	for _, want := range []string{"C", "B", "A"} {
		got, ok := s.Pop()
		if !ok {
			t.Fatalf("Pop() reported empty, want %q", want)
		}
		if got != want {
			t.Errorf("Pop() = %q, want %q", got, want)
		}
	}

	got, ok := s.Pop()
	if ok {
		t.Errorf("Pop() on empty stack = (%q, true), want empty", got)
	}
	if got != "" {
		t.Errorf("Pop() on empty stack returned non-zero value %q", got)
	}
}

func TestStackPeek(t *testing.T) {
	s := NewStack[int]()
	if _, ok := s.Peek(); ok {
		t.Error("Peek() on empty stack should report empty")
	}
	if !s.IsEmpty() {
		t.Error("new stack should be empty")
	}

	s.Push(1)
	s.Push(2)
	if v, ok := s.Peek(); !ok || v != 2 {
		t.Errorf("Peek() = (%d, %v), want (2, true)", v, ok)
	}
	if s.Len() != 2 {
		t.Errorf("Peek() must not remove items, Len() = %d", s.Len())
	}
}

func TestStackPeekAllIsCopy(t *testing.T) {
	s := NewStack[string]()
	s.Push("x")
	snap := s.PeekAll()
	snap[0] = "mutated"

	if v, _ := s.Peek(); v != "x" {
		t.Errorf("modifying PeekAll() result changed the stack: top = %q", v)
	}
}

func TestStackEmptyPeekAll(t *testing.T) {
	s := NewStack[string]()
	if got := s.PeekAll(); len(got) != 0 {
		t.Errorf("PeekAll() on empty stack = %v, want empty", got)
	}
}
