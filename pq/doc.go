// SPDX-License-Identifier: MIT

// Package pq provides array-backed binary heap priority queues keyed by a
// float64 priority.
//
// Two flavours are offered:
//
//   - HeapQueue[T]      — a plain max-heap. Add returns an index-free Item.
//   - AdaptableQueue[T] — the same heap plus stable Locator tickets that allow
//     the caller to change an entry's priority (Update) or pull it out of the
//     middle of the heap (Remove) in O(log n), without scanning.
//
// Ordering:
//
//   - "Higher priority" means a strictly greater Priority value, so both queues
//     are max-heaps. Negate priorities before insertion to get min-ordering
//     (this is what Dijkstra and A* do).
//   - Ties are broken by the current array position. Callers must not depend
//     on the order in which equal priorities come out.
//
// Locators:
//
// A Locator is an opaque value (queue id, slot, generation). The queue keeps a
// slot table mapping each live slot to the entry's current heap index; every
// swap inside the heap rewrites both swapped entries' indices. Dequeue and
// Remove retire the slot by bumping its generation, so a stale or foreign
// Locator is always detected and reported as ErrInvalidLocator.
//
// Complexity:
//
//   - Add, Dequeue, Update, Remove: O(log n)
//   - Peek, Len, IsEmpty, Index, Valid: O(1)
//
// Errors:
//
//   - ErrEmptyQueue     — Peek/Dequeue on an empty queue.
//   - ErrInvalidLocator — Update/Remove/Index with a stale or foreign Locator.
//
// Both are programming-contract violations: probe IsEmpty before dequeuing and
// drop locators once their entry has left the queue.
//
// Queues are not safe for concurrent use.
package pq
