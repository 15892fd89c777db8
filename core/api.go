package core

// Directed reports whether the graph was built with WithDirected(true).
func (g *Graph[V, E]) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph[V, E]) Looped() bool { return g.allowLoops }

// GraphStats is a read-only snapshot of configuration flags and sizes.
type GraphStats struct {
	Directed    bool
	AllowsLoops bool
	VertexCount int
	EdgeCount   int
	LoopCount   int
}

// Stats returns a snapshot of g's flags and counts.
// Complexity: O(V).
func (g *Graph[V, E]) Stats() GraphStats {
	return GraphStats{
		Directed:    g.directed,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
		EdgeCount:   g.EdgeCount(),
		LoopCount:   g.loops,
	}
}
