// Package heap exposes generic array-backed binary heaps; a comparator driven core along with min/max variants for
// ordered element types.
package heap

// LessFunc reports whether a should sort closer to the root of the heap than b.
//
// NOTE: The function must define a strict ordering, elements which compare equal should return false in both
// directions.
type LessFunc[T any] func(a, b T) bool

// Heap implements a binary heap over elements of type T ordered by the given comparison function; the backing slice
// encodes a complete binary tree where the element at index i has its parent at (i-1)/2 and its children at 2i+1 and
// 2i+2.
type Heap[T any] struct {
	less LessFunc[T]
	data []T
}

// NewHeap creates a new empty heap ordered by the given comparison function.
func NewHeap[T any](less LessFunc[T]) *Heap[T] {
	return &Heap[T]{less: less}
}

// NewHeapWithCapacity creates a new empty heap where the underlying capacity is set to the given value.
//
// NOTE: The 'Heap' capacity has the same behavior as a slices capacity meaning it may grow beyond the given capacity,
// the capacity is there for performance optimizations.
func NewHeapWithCapacity[T any](less LessFunc[T], capacity int) *Heap[T] {
	return &Heap[T]{less: less, data: make([]T, 0, capacity)}
}

// Push adds the given element to the heap.
func (h *Heap[T]) Push(v T) {
	h.data = append(h.data, v)
	h.up(len(h.data) - 1)
}

// Peek returns the element at the root of the heap without removing it, returning 'ErrEmpty' if the heap contains no
// elements.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.data) == 0 {
		return *new(T), ErrEmpty
	}

	return h.data[0], nil
}

// Pop removes and returns the element at the root of the heap, returning 'ErrEmpty' if the heap contains no elements.
func (h *Heap[T]) Pop() (T, error) {
	if len(h.data) == 0 {
		return *new(T), ErrEmpty
	}

	var (
		n = len(h.data) - 1
		v = h.data[0]
	)

	h.data[0] = h.data[n]
	h.data = h.data[:n]

	if n > 0 {
		h.down(0)
	}

	return v, nil
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.data)
}

// Empty returns whether or not the heap contains no elements.
func (h *Heap[T]) Empty() bool {
	return len(h.data) == 0
}

// Drain removes all elements from the heap in root-first order running the given function on each element. In the
// event of an error, extraction stops early, and returns the error.
func (h *Heap[T]) Drain(fn func(v T) error) error {
	for h.Len() > 0 {
		v, _ := h.Pop()

		if err := fn(v); err != nil {
			return err
		}
	}

	return nil
}

// up moves the element at the given index towards the root while it compares strictly before its parent.
func (h *Heap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2

		if !h.less(h.data[i], h.data[parent]) {
			return
		}

		h.data[i], h.data[parent] = h.data[parent], h.data[i]

		i = parent
	}
}

// down moves the element at the given index towards the leaves while a child compares strictly before it; when both
// children compare equal the left child is preferred.
func (h *Heap[T]) down(i int) {
	for {
		var (
			left  = 2*i + 1
			right = 2*i + 2
			next  = i
		)

		if left < len(h.data) && h.less(h.data[left], h.data[next]) {
			next = left
		}

		if right < len(h.data) && h.less(h.data[right], h.data[next]) {
			next = right
		}

		if next == i {
			return
		}

		h.data[i], h.data[next] = h.data[next], h.data[i]

		i = next
	}
}
