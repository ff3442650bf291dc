package containers

// Queue is a FIFO sequence backed by a slice
type Queue[T any] struct {
	items []T
}

// NewQueue creates a new empty queue
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue adds an item to the back of the queue
func (q *Queue[T]) Enqueue(item T) {
	q.items = append(q.items, item)
}

// Dequeue removes and returns the front item. ok is false if the queue is empty.
func (q *Queue[T]) Dequeue() (item T, ok bool) {
	if len(q.items) == 0 {
		return item, false
	}
	item = q.items[0]
	var zero T
	q.items[0] = zero
	q.items = q.items[1:]
	if len(q.items) == 0 {
		// Release the consumed prefix of the backing array.
		q.items = nil
	}
	return item, true
}

// Peek returns the front item without removing it
func (q *Queue[T]) Peek() (item T, ok bool) {
	if len(q.items) == 0 {
		return item, false
	}
	return q.items[0], true
}

// PeekAll returns a copy of the contents from front to back
func (q *Queue[T]) PeekAll() []T {
	out := make([]T, len(q.items))
	copy(out, q.items)
	return out
}

// Len returns the number of items in the queue
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// IsEmpty returns true if the queue has no items
func (q *Queue[T]) IsEmpty() bool {
	return len(q.items) == 0
}
