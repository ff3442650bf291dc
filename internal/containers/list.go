package containers

// listNode is a single link of a List. Each node owns its successor.
type listNode[T comparable] struct {
	value T
	next  *listNode[T]
}

// List is a singly linked list. Values are compared with == for removal and
// lookup.
type List[T comparable] struct {
	head *listNode[T]
}

// NewList creates a new empty list
func NewList[T comparable]() *List[T] {
	return &List[T]{}
}

// Append adds a value to the end of the list.
// The tail is found by walking from the head; no tail pointer is cached.
func (l *List[T]) Append(value T) {
	n := &listNode[T]{value: value}
	if l.head == nil {
		l.head = n
		return
	}
	last := l.head
	for last.next != nil {
		last = last.next
	}
	last.next = n
}

// RemoveByValue removes the first node whose value equals key.
// It reports whether a node was removed; a miss leaves the list unchanged.
func (l *List[T]) RemoveByValue(key T) bool {
	var prev *listNode[T]
	curr := l.head
	for curr != nil && curr.value != key {
		prev = curr
		curr = curr.next
	}
	if curr == nil {
		return false
	}
	if prev == nil {
		l.head = curr.next
	} else {
		prev.next = curr.next
	}
	curr.next = nil
	return true
}

// InsertAfter inserts value directly after the first node equal to mark.
// It returns false and leaves the list unchanged if mark is not present.
func (l *List[T]) InsertAfter(mark, value T) bool {
	for curr := l.head; curr != nil; curr = curr.next {
		if curr.value == mark {
			curr.next = &listNode[T]{value: value, next: curr.next}
			return true
		}
	}
	return false
}

// PopFront removes and returns the head value. ok is false if the list is empty.
func (l *List[T]) PopFront() (value T, ok bool) {
	if l.head == nil {
		return value, false
	}
	n := l.head
	l.head = n.next
	n.next = nil
	return n.value, true
}

// Contains returns true if the list holds a value equal to key
func (l *List[T]) Contains(key T) bool {
	for curr := l.head; curr != nil; curr = curr.next {
		if curr.value == key {
			return true
		}
	}
	return false
}

// Len returns the number of values in the list
func (l *List[T]) Len() int {
	count := 0
	for curr := l.head; curr != nil; curr = curr.next {
		count++
	}
	return count
}

// ToSlice returns the values from head to tail
func (l *List[T]) ToSlice() []T {
	out := []T{}
	for curr := l.head; curr != nil; curr = curr.next {
		out = append(out, curr.value)
	}
	return out
}
