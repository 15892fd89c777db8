// SPDX-License-Identifier: MIT

package gridgraph

// Regions finds every contiguous region of open (non-wall) cells under
// 4-directional adjacency. Regions are ordered by their first cell in
// row-major order; cells within a region are in BFS discovery order.
//
// Time:   O(R·C).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) Regions() [][]NodeID {
	seen := make([]bool, len(g.nodes))
	var regions [][]NodeID

	for i := range g.nodes {
		if g.nodes[i].Wall || seen[i] {
			continue
		}
		queue := []NodeID{NodeID(i)}
		seen[i] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.nodes[queue[qi]].neighbors {
				if g.nodes[v].Wall || seen[v] {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		regions = append(regions, queue)
	}

	return regions
}

// RegionOf labels each open cell with the index of its region in Regions();
// walls are labelled -1.
func (g *Grid) RegionOf() []int {
	label := make([]int, len(g.nodes))
	for i := range label {
		label[i] = -1
	}
	for idx, region := range g.Regions() {
		for _, id := range region {
			label[id] = idx
		}
	}

	return label
}

// Connected reports whether open cells a and b can reach each other without
// crossing a wall. Walls and invalid IDs are never connected.
func (g *Grid) Connected(a, b NodeID) bool {
	if !g.Valid(a) || !g.Valid(b) || g.nodes[a].Wall || g.nodes[b].Wall {
		return false
	}
	if a == b {
		return true
	}
	label := g.RegionOf()

	return label[a] == label[b]
}
