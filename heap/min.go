package heap

import "golang.org/x/exp/constraints"

// MinHeap is a binary heap over an ordered element type where the root always holds the smallest element; every parent
// compares less than or equal to its children.
type MinHeap[T constraints.Ordered] struct {
	inner *Heap[T]
}

// NewMinHeap creates a new empty min-heap.
func NewMinHeap[T constraints.Ordered]() *MinHeap[T] {
	return &MinHeap[T]{inner: NewHeap(minLess[T])}
}

// NewMinHeapWithCapacity creates a new empty min-heap where the underlying capacity is set to the given value.
//
// NOTE: The 'MinHeap' capacity has the same behavior as a slices capacity meaning it may grow beyond the given
// capacity, the capacity is there for performance optimizations.
func NewMinHeapWithCapacity[T constraints.Ordered](capacity int) *MinHeap[T] {
	return &MinHeap[T]{inner: NewHeapWithCapacity(minLess[T], capacity)}
}

// Insert adds the given element to the heap.
func (h *MinHeap[T]) Insert(v T) {
	h.inner.Push(v)
}

// RemoveMin removes and returns the smallest element in the heap, returning 'ErrEmpty' if the heap contains no
// elements.
func (h *MinHeap[T]) RemoveMin() (T, error) {
	return h.inner.Pop()
}

// PeekMin returns the smallest element in the heap without removing it, returning 'ErrEmpty' if the heap contains no
// elements.
func (h *MinHeap[T]) PeekMin() (T, error) {
	return h.inner.Peek()
}

// Size returns the number of elements in the heap.
func (h *MinHeap[T]) Size() int {
	return h.inner.Len()
}

// IsEmpty returns whether or not the heap contains no elements.
func (h *MinHeap[T]) IsEmpty() bool {
	return h.inner.Empty()
}

func minLess[T constraints.Ordered](a, b T) bool {
	return a < b
}
