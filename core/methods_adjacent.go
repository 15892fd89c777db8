package core

import "iter"

// incidence picks the adjacency table that answers an outgoing or incoming
// query for v. Undirected graphs answer both from the outgoing table.
func (g *Graph[V, E]) incidence(v *Vertex[V], outgoing bool) *adjacency[V, E] {
	if !outgoing && g.directed {
		return g.in[v]
	}

	return g.out[v]
}

// Degree returns the number of outgoing (outgoing=true) or incoming edges of v.
// Unknown vertices have degree 0.
// Complexity: O(1).
func (g *Graph[V, E]) Degree(v *Vertex[V], outgoing bool) int {
	adj := g.incidence(v, outgoing)
	if adj == nil {
		return 0
	}

	return adj.len()
}

// IncidentEdges lazily yields the outgoing (outgoing=true) or incoming edges
// of v in link order. Unknown vertices yield nothing.
// Complexity: O(deg(v)) when fully drained.
func (g *Graph[V, E]) IncidentEdges(v *Vertex[V], outgoing bool) iter.Seq[*Edge[V, E]] {
	adj := g.incidence(v, outgoing)

	return func(yield func(*Edge[V, E]) bool) {
		if adj == nil {
			return
		}
		for _, n := range adj.order {
			if !yield(adj.byNeighbor[n]) {
				return
			}
		}
	}
}

// Neighbors lazily yields the vertex on the far side of every incident edge.
func (g *Graph[V, E]) Neighbors(v *Vertex[V], outgoing bool) iter.Seq[*Vertex[V]] {
	adj := g.incidence(v, outgoing)

	return func(yield func(*Vertex[V]) bool) {
		if adj == nil {
			return
		}
		for _, n := range adj.order {
			if !yield(n) {
				return
			}
		}
	}
}
