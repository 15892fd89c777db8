// SPDX-License-Identifier: MIT

package pq

import "errors"

// Sentinel errors for queue operations.
var (
	// ErrEmptyQueue indicates Peek or Dequeue was called on an empty queue.
	ErrEmptyQueue = errors.New("pq: priority queue is empty")

	// ErrInvalidLocator indicates a Locator that was already removed from its
	// queue or that belongs to a different queue instance.
	ErrInvalidLocator = errors.New("pq: invalid locator")
)

// Item is a (priority, value) pair. The basic HeapQueue hands it back from Add
// as a plain, index-free handle.
type Item[T any] struct {
	Priority float64
	Value    T
}

// Locator is a stable ticket for an entry of an AdaptableQueue.
// The zero Locator is never valid.
type Locator struct {
	queue uint64 // owning queue id, never 0 for a live queue
	slot  int    // index into the queue's slot table
	gen   uint32 // slot generation at issue time
}
