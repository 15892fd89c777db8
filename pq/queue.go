// SPDX-License-Identifier: MIT

package pq

// HeapQueue is an array-backed max-heap of Items.
// The zero value is not usable; construct with New.
type HeapQueue[T any] struct {
	heap binaryHeap[Item[T]]
}

// New returns an empty HeapQueue.
func New[T any]() *HeapQueue[T] {
	q := &HeapQueue[T]{}
	q.heap.higher = func(a, b Item[T]) bool { return a.Priority > b.Priority }

	return q
}

// Add inserts value with the given priority and returns the stored Item.
// Complexity: O(log n).
func (q *HeapQueue[T]) Add(priority float64, value T) Item[T] {
	it := Item[T]{Priority: priority, Value: value}
	q.heap.push(it)

	return it
}

// Len returns the number of queued items. Complexity: O(1).
func (q *HeapQueue[T]) Len() int { return q.heap.len() }

// IsEmpty reports whether the queue holds no items. Complexity: O(1).
func (q *HeapQueue[T]) IsEmpty() bool { return q.heap.len() == 0 }

// Peek returns the highest-priority item without removing it.
// Returns ErrEmptyQueue if the queue is empty.
func (q *HeapQueue[T]) Peek() (float64, T, error) {
	if q.IsEmpty() {
		var zero T
		return 0, zero, ErrEmptyQueue
	}
	top := q.heap.items[0]

	return top.Priority, top.Value, nil
}

// Dequeue removes and returns the highest-priority item.
// Returns ErrEmptyQueue if the queue is empty.
// Complexity: O(log n).
func (q *HeapQueue[T]) Dequeue() (float64, T, error) {
	if q.IsEmpty() {
		var zero T
		return 0, zero, ErrEmptyQueue
	}
	it := q.heap.popRoot()

	return it.Priority, it.Value, nil
}
