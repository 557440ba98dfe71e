package pq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchbase/tools-common/heaps/heap"
)

func TestNewPriorityQueue(t *testing.T) {
	queue := NewPriorityQueue[int](42)

	require.Zero(t, queue.Len())
}

func TestPriorityQueueEnqueueDequeueNoPriority(t *testing.T) {
	queue := NewPriorityQueue[int](5)

	for i := 0; i < 5; i++ {
		queue.Enqueue(Item[int]{Payload: i})
	}

	require.Equal(t, 5, queue.Len())

	var (
		expected = map[int]struct{}{0: {}, 1: {}, 2: {}, 3: {}, 4: {}}
		actual   = make(map[int]struct{})
	)

	require.NoError(t, queue.Drain(func(item Item[int]) error { actual[item.Payload] = struct{}{}; return nil }))
	require.Equal(t, expected, actual)
}

func TestPriorityQueueEnqueueDequeueWithPriority(t *testing.T) {
	queue := NewPriorityQueue[int](5)

	for i := 0; i < 5; i++ {
		queue.Enqueue(Item[int]{Payload: i, Priority: i})
	}

	require.Equal(t, 5, queue.Len())

	var (
		expected = []int{4, 3, 2, 1, 0}
		actual   = make([]int, 0, 5)
	)

	require.NoError(t, queue.Drain(func(item Item[int]) error { actual = append(actual, item.Payload); return nil }))
	require.Equal(t, expected, actual)
}

func TestPriorityQueueDequeueEmpty(t *testing.T) {
	queue := NewPriorityQueue[int](5)

	_, err := queue.Dequeue()
	require.ErrorIs(t, err, heap.ErrEmpty)

	_, err = queue.Peek()
	require.ErrorIs(t, err, heap.ErrEmpty)
}

func TestPriorityQueuePeek(t *testing.T) {
	queue := NewPriorityQueue[string](5)

	queue.Enqueue(Item[string]{Payload: "low", Priority: 1})
	queue.Enqueue(Item[string]{Payload: "high", Priority: 9})

	peeked, err := queue.Peek()
	require.NoError(t, err)
	require.Equal(t, "high", peeked.Payload)
	require.Equal(t, 2, queue.Len())
}

func TestPriorityQueueDrainNoItems(t *testing.T) {
	queue := NewPriorityQueue[int](5)

	var run bool

	require.NoError(t, queue.Drain(func(item Item[int]) error { run = true; return nil }))
	require.False(t, run)
}

func TestPriorityQueueDrainWithError(t *testing.T) {
	queue := NewPriorityQueue[int](5)

	var run int

	err := queue.Drain(func(item Item[int]) error { run++; return assert.AnError })
	require.NoError(t, err)
	require.Zero(t, run)

	for i := 0; i < 5; i++ {
		queue.Enqueue(Item[int]{Payload: i})
	}

	err = queue.Drain(func(item Item[int]) error { run++; return assert.AnError })
	require.ErrorIs(t, err, assert.AnError)
	require.Equal(t, 1, run)
}
