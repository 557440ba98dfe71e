package heap

import "golang.org/x/exp/constraints"

// MaxHeap is a binary heap over an ordered element type where the root always holds the largest element; every parent
// compares greater than or equal to its children.
type MaxHeap[T constraints.Ordered] struct {
	inner *Heap[T]
}

// NewMaxHeap creates a new empty max-heap.
func NewMaxHeap[T constraints.Ordered]() *MaxHeap[T] {
	return &MaxHeap[T]{inner: NewHeap(maxLess[T])}
}

// NewMaxHeapWithCapacity creates a new empty max-heap where the underlying capacity is set to the given value.
//
// NOTE: The 'MaxHeap' capacity has the same behavior as a slices capacity meaning it may grow beyond the given
// capacity, the capacity is there for performance optimizations.
func NewMaxHeapWithCapacity[T constraints.Ordered](capacity int) *MaxHeap[T] {
	return &MaxHeap[T]{inner: NewHeapWithCapacity(maxLess[T], capacity)}
}

// Insert adds the given element to the heap.
func (h *MaxHeap[T]) Insert(v T) {
	h.inner.Push(v)
}

// RemoveMax removes and returns the largest element in the heap, returning 'ErrEmpty' if the heap contains no
// elements.
func (h *MaxHeap[T]) RemoveMax() (T, error) {
	return h.inner.Pop()
}

// PeekMax returns the largest element in the heap without removing it, returning 'ErrEmpty' if the heap contains no
// elements.
func (h *MaxHeap[T]) PeekMax() (T, error) {
	return h.inner.Peek()
}

// Size returns the number of elements in the heap.
func (h *MaxHeap[T]) Size() int {
	return h.inner.Len()
}

// IsEmpty returns whether or not the heap contains no elements.
func (h *MaxHeap[T]) IsEmpty() bool {
	return h.inner.Empty()
}

func maxLess[T constraints.Ordered](a, b T) bool {
	return a > b
}
