// SPDX-License-Identifier: MIT

package pq

import (
	"fmt"
	"sync/atomic"
)

// queueIDs hands out a distinct id to every AdaptableQueue so that a Locator
// issued by one queue is rejected by another.
var queueIDs atomic.Uint64

// entry is the heap element of an AdaptableQueue.
type entry[T any] struct {
	priority float64
	value    T
	slot     int
}

// slotState tracks where a Locator's entry currently lives in the heap.
type slotState struct {
	index int    // current heap index while live
	gen   uint32 // bumped every time the slot is retired
	live  bool
}

// AdaptableQueue is a max-heap priority queue whose entries can be re-prioritised
// or removed through the Locator returned by Add.
// The zero value is not usable; construct with NewAdaptable.
type AdaptableQueue[T any] struct {
	id    uint64
	heap  binaryHeap[*entry[T]]
	slots []slotState
	free  []int
}

// NewAdaptable returns an empty AdaptableQueue.
func NewAdaptable[T any]() *AdaptableQueue[T] {
	q := &AdaptableQueue[T]{id: queueIDs.Add(1)}
	q.heap.higher = func(a, b *entry[T]) bool { return a.priority > b.priority }
	q.heap.onSwap = q.reindex

	return q
}

// reindex is the swap hook: both swapped entries learn their new position.
func (q *AdaptableQueue[T]) reindex(i, j int) {
	q.slots[q.heap.items[i].slot].index = i
	q.slots[q.heap.items[j].slot].index = j
}

// Add inserts value with the given priority and returns its Locator.
// Complexity: O(log n).
func (q *AdaptableQueue[T]) Add(priority float64, value T) Locator {
	var s int
	if n := len(q.free); n > 0 {
		s = q.free[n-1]
		q.free = q.free[:n-1]
	} else {
		s = len(q.slots)
		q.slots = append(q.slots, slotState{})
	}
	q.slots[s].index = q.heap.len()
	q.slots[s].live = true
	q.heap.push(&entry[T]{priority: priority, value: value, slot: s})

	return Locator{queue: q.id, slot: s, gen: q.slots[s].gen}
}

// Len returns the number of queued entries. Complexity: O(1).
func (q *AdaptableQueue[T]) Len() int { return q.heap.len() }

// IsEmpty reports whether the queue holds no entries. Complexity: O(1).
func (q *AdaptableQueue[T]) IsEmpty() bool { return q.heap.len() == 0 }

// Peek returns the highest-priority entry without removing it.
// Returns ErrEmptyQueue if the queue is empty.
func (q *AdaptableQueue[T]) Peek() (float64, T, error) {
	if q.IsEmpty() {
		var zero T
		return 0, zero, ErrEmptyQueue
	}
	top := q.heap.items[0]

	return top.priority, top.value, nil
}

// Dequeue removes and returns the highest-priority entry. Its Locator becomes
// invalid. Returns ErrEmptyQueue if the queue is empty.
// Complexity: O(log n).
func (q *AdaptableQueue[T]) Dequeue() (float64, T, error) {
	if q.IsEmpty() {
		var zero T
		return 0, zero, ErrEmptyQueue
	}
	e := q.heap.popRoot()
	q.retire(e.slot)

	return e.priority, e.value, nil
}

// Update replaces the priority and value of the entry behind loc and restores
// the heap property locally: up if it now outranks its parent, down otherwise.
// Returns ErrInvalidLocator for a stale or foreign Locator.
// Complexity: O(log n).
func (q *AdaptableQueue[T]) Update(loc Locator, priority float64, value T) error {
	i, err := q.resolve(loc)
	if err != nil {
		return err
	}
	e := q.heap.items[i]
	e.priority = priority
	e.value = value
	q.heap.fix(i)

	return nil
}

// Remove pulls the entry behind loc out of the queue and returns it.
// Returns ErrInvalidLocator for a stale or foreign Locator.
// Complexity: O(log n).
func (q *AdaptableQueue[T]) Remove(loc Locator) (float64, T, error) {
	i, err := q.resolve(loc)
	if err != nil {
		var zero T
		return 0, zero, err
	}
	e := q.heap.removeAt(i)
	q.retire(e.slot)

	return e.priority, e.value, nil
}

// Index returns the current heap index of the entry behind loc.
func (q *AdaptableQueue[T]) Index(loc Locator) (int, error) {
	return q.resolve(loc)
}

// Valid reports whether loc still refers to a live entry of q.
func (q *AdaptableQueue[T]) Valid(loc Locator) bool {
	_, err := q.resolve(loc)

	return err == nil
}

// resolve validates loc and maps it to a heap index.
func (q *AdaptableQueue[T]) resolve(loc Locator) (int, error) {
	if loc.queue != q.id {
		return -1, fmt.Errorf("%w: locator belongs to another queue", ErrInvalidLocator)
	}
	if loc.slot < 0 || loc.slot >= len(q.slots) {
		return -1, fmt.Errorf("%w: slot %d out of range", ErrInvalidLocator, loc.slot)
	}
	st := q.slots[loc.slot]
	if !st.live || st.gen != loc.gen {
		return -1, fmt.Errorf("%w: slot %d is stale", ErrInvalidLocator, loc.slot)
	}
	if st.index < 0 || st.index >= q.heap.len() || q.heap.items[st.index].slot != loc.slot {
		// slot table and heap disagree; this is a bug in the queue itself
		return -1, fmt.Errorf("%w: slot %d lost its heap position", ErrInvalidLocator, loc.slot)
	}

	return st.index, nil
}

// retire invalidates every Locator issued for slot s and recycles it.
func (q *AdaptableQueue[T]) retire(s int) {
	q.slots[s].live = false
	q.slots[s].gen++
	q.slots[s].index = -1
	q.free = append(q.free, s)
}
