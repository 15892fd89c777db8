package core

import "fmt"

// InsertEdge creates an edge origin→destination carrying element and registers
// it in origin's outgoing table and destination's incoming table. In an
// undirected graph both registrations land in the single adjacency table and
// share the same *Edge.
//
// An existing edge between the same ordered pair (or, if undirected, the same
// unordered pair) is replaced in place.
//
// Errors: ErrNilVertex, ErrVertexNotFound, ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph[V, E]) InsertEdge(origin, destination *Vertex[V], element E) (*Edge[V, E], error) {
	if err := g.checkVertex(origin); err != nil {
		return nil, fmt.Errorf("insert edge origin: %w", err)
	}
	if err := g.checkVertex(destination); err != nil {
		return nil, fmt.Errorf("insert edge destination: %w", err)
	}
	loop := origin == destination
	if loop && !g.allowLoops {
		return nil, ErrLoopNotAllowed
	}

	e := &Edge[V, E]{origin: origin, destination: destination, element: element}
	existed := g.out[origin].set(destination, e)
	switch {
	case g.directed:
		g.in[destination].set(origin, e)
	case !loop:
		g.out[destination].set(origin, e)
	}
	if loop && !existed {
		g.loops++
	}

	return e, nil
}

// GetEdge returns the edge from u to v, or nil if there is none.
// For undirected graphs GetEdge(u, v) and GetEdge(v, u) return the same edge.
// Complexity: O(1) average.
func (g *Graph[V, E]) GetEdge(u, v *Vertex[V]) *Edge[V, E] {
	adj, ok := g.out[u]
	if !ok {
		return nil
	}

	return adj.byNeighbor[v]
}

// EdgeCount sums every outgoing table. Undirected edges are registered under
// both endpoints and are halved; self-loops are registered once and counted once.
// Complexity: O(V).
func (g *Graph[V, E]) EdgeCount() int {
	total := 0
	for _, adj := range g.out {
		total += adj.len()
	}
	if g.directed {
		return total
	}

	return (total-g.loops)/2 + g.loops
}

// Edges returns every edge exactly once, ordered by origin insertion order and
// then by neighbor link order.
// Complexity: O(V + E).
func (g *Graph[V, E]) Edges() []*Edge[V, E] {
	out := make([]*Edge[V, E], 0, g.EdgeCount())
	seen := make(map[*Edge[V, E]]struct{}, cap(out))
	for _, v := range g.vertices {
		adj := g.out[v]
		for _, n := range adj.order {
			e := adj.byNeighbor[n]
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}

	return out
}
