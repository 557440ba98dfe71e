// Package pq exposes a generic priority queue implemented using a binary heap.
package pq

import (
	"github.com/couchbase/tools-common/heaps/heap"
)

// PriorityQueue implements a basic priority queue which accepts a generic payload with an integer priority.
type PriorityQueue[T any] struct {
	inner *heap.Heap[Item[T]]
}

// NewPriorityQueue creates a new priority queue where the underlying capacity is set to the given value.
//
// NOTE: The 'PriorityQueue' capacity has the same behavior as a slices capacity meaning it may grow beyond the given
// capacity, the capacity is there for performance optimizations.
func NewPriorityQueue[T any](capacity int) *PriorityQueue[T] {
	return &PriorityQueue[T]{inner: heap.NewHeapWithCapacity(higherPriority[T], capacity)}
}

// Enqueue adds the given item to the priority queue.
func (p *PriorityQueue[T]) Enqueue(item Item[T]) {
	p.inner.Push(item)
}

// Dequeue removes and returns the item from the queue with the highest priority, where multiple items have the same
// priority, they're returned in an arbitrary order. Returns 'heap.ErrEmpty' if the queue contains no items.
func (p *PriorityQueue[T]) Dequeue() (Item[T], error) {
	return p.inner.Pop()
}

// Peek returns the item from the queue with the highest priority without removing it, returning 'heap.ErrEmpty' if
// the queue contains no items.
func (p *PriorityQueue[T]) Peek() (Item[T], error) {
	return p.inner.Peek()
}

// Len returns the number of items in the priority queue.
func (p *PriorityQueue[T]) Len() int {
	return p.inner.Len()
}

// Drain removes all items from the queue running the given function on each item. In the event of an error, dequeuing
// stops early, and returns the error.
func (p *PriorityQueue[T]) Drain(fn func(item Item[T]) error) error {
	return p.inner.Drain(fn)
}

func higherPriority[T any](a, b Item[T]) bool {
	return a.Priority > b.Priority
}
