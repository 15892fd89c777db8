package dfs

import (
	"context"
	"slices"

	"github.com/katalvlaran/pathfinder/core"
)

// TopoOption adjusts a TopologicalSort call.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext lets ctx abort the sort; nil is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter colors vertices and collects the finish order.
type topoSorter[V, E any] struct {
	graph *core.Graph[V, E]
	opts  topoOptions
	state map[*core.Vertex[V]]int
	order []*core.Vertex[V]
}

// TopologicalSort computes a linear ordering of the vertices of g such that
// for every edge u→v, u appears before v. Roots are tried in insertion order.
//
// Errors: ErrGraphNil, ErrUndirected, ErrCycleDetected (self-loops included),
// or the context error.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort[V, E any](g *core.Graph[V, E], options ...TopoOption) ([]*core.Vertex[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	n := g.VertexCount()
	sorter := &topoSorter[V, E]{
		graph: g,
		opts:  opts,
		state: make(map[*core.Vertex[V]]int, n),
		order: make([]*core.Vertex[V], 0, n),
	}
	for v := range g.Vertices() {
		if sorter.state[v] != White {
			continue
		}
		if err := sorter.visit(v); err != nil {
			return nil, err
		}
	}
	slices.Reverse(sorter.order)

	return sorter.order, nil
}

// visit colors v Gray, explores its successors, then records it in post-order.
func (t *topoSorter[V, E]) visit(v *core.Vertex[V]) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[v] {
	case Gray:
		return ErrCycleDetected
	case Black:
		return nil
	}
	t.state[v] = Gray

	for nb := range t.graph.Neighbors(v, true) {
		if err := t.visit(nb); err != nil {
			return err
		}
	}

	t.state[v] = Black
	t.order = append(t.order, v)

	return nil
}
