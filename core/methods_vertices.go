package core

import "iter"

// InsertVertex creates a vertex holding element and adds empty adjacency for it.
// Complexity: O(1) amortized.
func (g *Graph[V, E]) InsertVertex(element V) *Vertex[V] {
	v := &Vertex[V]{element: element}
	g.vertices = append(g.vertices, v)
	g.out[v] = newAdjacency[V, E]()
	if g.directed {
		g.in[v] = newAdjacency[V, E]()
	}

	return v
}

// HasVertex reports whether v was inserted into g.
// Complexity: O(1).
func (g *Graph[V, E]) HasVertex(v *Vertex[V]) bool {
	if v == nil {
		return false
	}
	_, ok := g.out[v]

	return ok
}

// Vertices yields every vertex in insertion order.
func (g *Graph[V, E]) Vertices() iter.Seq[*Vertex[V]] {
	return func(yield func(*Vertex[V]) bool) {
		for _, v := range g.vertices {
			if !yield(v) {
				return
			}
		}
	}
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph[V, E]) VertexCount() int { return len(g.vertices) }

// checkVertex validates that v is a live vertex of g.
func (g *Graph[V, E]) checkVertex(v *Vertex[V]) error {
	if v == nil {
		return ErrNilVertex
	}
	if _, ok := g.out[v]; !ok {
		return ErrVertexNotFound
	}

	return nil
}
