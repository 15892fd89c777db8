// SPDX-License-Identifier: MIT

package gridsearch

import (
	"github.com/katalvlaran/pathfinder/gridgraph"
	"github.com/katalvlaran/pathfinder/pq"
)

// frontier holds discovered nodes waiting to be expanded.
type frontier interface {
	push(id gridgraph.NodeID)
	pop() (gridgraph.NodeID, bool)
	len() int
}

// fifo is a slice-backed queue. head advances instead of reslicing so the
// backing array is reused.
type fifo struct {
	items []gridgraph.NodeID
	head  int
}

func (q *fifo) push(id gridgraph.NodeID) { q.items = append(q.items, id) }

func (q *fifo) pop() (gridgraph.NodeID, bool) {
	if q.head == len(q.items) {
		return gridgraph.NoNode, false
	}
	id := q.items[q.head]
	q.head++

	return id, true
}

func (q *fifo) len() int { return len(q.items) - q.head }

// lifo is a slice-backed stack.
type lifo struct {
	items []gridgraph.NodeID
}

func (s *lifo) push(id gridgraph.NodeID) { s.items = append(s.items, id) }

func (s *lifo) pop() (gridgraph.NodeID, bool) {
	n := len(s.items)
	if n == 0 {
		return gridgraph.NoNode, false
	}
	id := s.items[n-1]
	s.items = s.items[:n-1]

	return id, true
}

func (s *lifo) len() int { return len(s.items) }

// priority pops the node with the smallest key. It stores -key in a max-heap
// and keeps one locator per node, so pushing a queued node repositions it.
type priority struct {
	queue    *pq.AdaptableQueue[gridgraph.NodeID]
	locators []pq.Locator
	key      func(id gridgraph.NodeID) float64
}

func newPriority(size int, key func(id gridgraph.NodeID) float64) *priority {
	return &priority{
		queue:    pq.NewAdaptable[gridgraph.NodeID](),
		locators: make([]pq.Locator, size),
		key:      key,
	}
}

func (p *priority) push(id gridgraph.NodeID) {
	k := -p.key(id)
	if loc := p.locators[id]; p.queue.Valid(loc) {
		// Valid locator means the node is queued; Update cannot fail here.
		_ = p.queue.Update(loc, k, id)
		return
	}
	p.locators[id] = p.queue.Add(k, id)
}

func (p *priority) pop() (gridgraph.NodeID, bool) {
	_, id, err := p.queue.Dequeue()
	if err != nil {
		return gridgraph.NoNode, false
	}

	return id, true
}

func (p *priority) len() int { return p.queue.Len() }
