package dfs

import (
	"errors"

	"github.com/katalvlaran/pathfinder/core"
)

// HasCycle reports whether g contains a cycle. On directed graphs a cycle is
// a back edge to a Gray vertex; on undirected graphs it is any edge to an
// already-visited vertex other than the tree parent. Self-loops always count.
func HasCycle[V, E any](g *core.Graph[V, E]) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.Directed() {
		_, err := TopologicalSort(g)
		if errors.Is(err, ErrCycleDetected) {
			return true, nil
		}

		return false, err
	}

	state := make(map[*core.Vertex[V]]int, g.VertexCount())
	var visit func(v, parent *core.Vertex[V]) bool
	visit = func(v, parent *core.Vertex[V]) bool {
		state[v] = Gray
		for nb := range g.Neighbors(v, true) {
			if nb == parent {
				continue
			}
			if state[nb] != White || visit(nb, v) {
				return true
			}
		}
		state[v] = Black

		return false
	}
	for v := range g.Vertices() {
		if state[v] == White && visit(v, nil) {
			return true, nil
		}
	}

	return false, nil
}
