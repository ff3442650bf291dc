// Package containers provides the small generic in-memory containers that
// back every screen of the event manager.
//
// None of the containers report structural conditions as errors: popping an
// empty stack, dequeuing an empty queue or searching for a missing key all
// return an ordinary "absent" result the caller has to check.
package containers

// Stack is a LIFO sequence backed by a slice
type Stack[T any] struct {
	items []T
}

// NewStack creates a new empty stack
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push adds an item to the top of the stack
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top item. ok is false if the stack is empty.
func (s *Stack[T]) Pop() (item T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return item, false
	}
	item = s.items[n-1]
	var zero T
	s.items[n-1] = zero // drop the reference held by the backing array
	s.items = s.items[:n-1]
	return item, true
}

// Peek returns the top item without removing it
func (s *Stack[T]) Peek() (item T, ok bool) {
	if len(s.items) == 0 {
		return item, false
	}
	return s.items[len(s.items)-1], true
}

// PeekAll returns a copy of the contents from bottom to top
func (s *Stack[T]) PeekAll() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items on the stack
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// IsEmpty returns true if the stack has no items
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}
