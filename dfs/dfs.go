package dfs

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

// walker encapsulates state during DFS.
type walker[V, E any] struct {
	graph *core.Graph[V, E]
	opts  Options[V]
	res   *Result[V]
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise, it starts only from start.
// Returns the Result, or the partial Result and an error if aborted by
// context or hook.
func DFS[V, E any](g *core.Graph[V, E], start *core.Vertex[V], opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions[V]()
	for _, fn := range opts {
		fn(&o)
	}

	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker[V, E]{
		graph: g,
		opts:  o,
		res: &Result[V]{
			Order:   make([]*core.Vertex[V], 0, n),
			Depth:   make(map[*core.Vertex[V]]int, n),
			Parent:  make(map[*core.Vertex[V]]*core.Vertex[V], n),
			Visited: make(map[*core.Vertex[V]]bool, n),
		},
	}

	if !o.FullTraversal {
		return w.res, w.traverse(start, 0)
	}
	for v := range g.Vertices() {
		if w.res.Visited[v] {
			continue
		}
		if err := w.traverse(v, 0); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// traverse visits v at the given depth, recursing into its neighbors.
func (w *walker[V, E]) traverse(v *core.Vertex[V], depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[v] = true
	w.res.Depth[v] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v.Element(), err)
		}
	}

	for nb := range w.graph.Neighbors(v, true) {
		if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
			break
		}
		if nb == v {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nb] {
			continue
		}
		w.res.Parent[nb] = v
		if err := w.traverse(nb, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %v: %w", v.Element(), err)
		}
	}

	w.res.Order = append(w.res.Order, v)

	return nil
}
