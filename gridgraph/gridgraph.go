// SPDX-License-Identifier: MIT

package gridgraph

import (
	"github.com/katalvlaran/pathfinder/core"
)

// ToCoreGraph converts the open cells of g into an undirected
// core.Graph[Position, float64]. Vertices are inserted in row-major order and
// every pair of adjacent open cells is joined by an edge of weight 1.
// The returned slice maps NodeID → vertex; walls map to nil.
// Complexity: O(R×C) time and memory.
func (g *Grid) ToCoreGraph() (*core.Graph[Position, float64], []*core.Vertex[Position]) {
	cg := core.NewGraph[Position, float64]()
	verts := make([]*core.Vertex[Position], len(g.nodes))
	for i := range g.nodes {
		if !g.nodes[i].Wall {
			verts[i] = cg.InsertVertex(g.nodes[i].Position)
		}
	}
	for i := range g.nodes {
		u := verts[i]
		if u == nil {
			continue
		}
		for _, nb := range g.nodes[i].neighbors {
			// Each undirected pair once: link only to higher IDs.
			if nb < NodeID(i) || verts[nb] == nil {
				continue
			}
			_, _ = cg.InsertEdge(u, verts[nb], 1)
		}
	}

	return cg, verts
}
