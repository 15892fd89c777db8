package bfs

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

// queueItem is a claimed vertex waiting for its visit.
type queueItem[V any] struct {
	v     *core.Vertex[V]
	depth int
}

// walker is the state of one BFS call.
type walker[V, E any] struct {
	graph   *core.Graph[V, E]
	opts    Options[V]
	queue   []queueItem[V]
	visited map[*core.Vertex[V]]bool
	res     *Result[V]
}

// BFS walks g outward from start. Input and option errors come back with a
// nil Result; a cancelled context or an OnVisit error comes back with the
// tree built up to that point.
func BFS[V, E any](g *core.Graph[V, E], start *core.Vertex[V], opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker[V, E]{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem[V], 0, n),
		visited: make(map[*core.Vertex[V]]bool, n),
		res: &Result[V]{
			Order:  make([]*core.Vertex[V], 0, n),
			Depth:  make(map[*core.Vertex[V]]int, n),
			Parent: make(map[*core.Vertex[V]]*core.Vertex[V], n),
		},
	}

	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// enqueue claims v at depth d under parent (nil for the root).
func (w *walker[V, E]) enqueue(v *core.Vertex[V], d int, parent *core.Vertex[V]) {
	w.visited[v] = true
	w.res.Depth[v] = d
	if parent != nil {
		w.res.Parent[v] = parent
	}
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem[V]{v: v, depth: d})
}

// loop drains the queue, checking the context before every dequeue.
func (w *walker[V, E]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue takes the head of the queue and reports it to OnDequeue.
func (w *walker[V, E]) dequeue() queueItem[V] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// visit appends to Order and runs the visit hook.
func (w *walker[V, E]) visit(item queueItem[V]) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v.Element(), err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker[V, E]) enqueueNeighbors(item queueItem[V]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for nbr := range w.graph.Neighbors(item.v, true) {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.v)
	}
}
