// SPDX-License-Identifier: MIT

package gridgraph

import (
	"container/list"
	"fmt"
)

// BreachWalls finds the fewest walls to knock down so that a and b become
// connected. Entering an open cell costs 0 and entering a wall costs 1,
// including a and b themselves. The path runs from a to b inclusive.
//
// Errors: ErrInvalidNode if a or b is not a node of g.
// Complexity: O(R·C) time and memory.
func (g *Grid) BreachWalls(a, b NodeID) (path []NodeID, cost int, err error) {
	if !g.Valid(a) || !g.Valid(b) {
		return nil, 0, fmt.Errorf("%w: %d→%d", ErrInvalidNode, a, b)
	}

	return g.breach([]NodeID{a}, map[NodeID]struct{}{b: {}})
}

// BreachRegions finds the fewest walls to knock down to join region srcRegion
// to region dstRegion, as numbered by Regions(). The path runs from a cell of
// the source region to a cell of the destination region.
//
// Errors: ErrComponentIndex for an index out of range.
func (g *Grid) BreachRegions(srcRegion, dstRegion int) (path []NodeID, cost int, err error) {
	regions := g.Regions()
	if srcRegion < 0 || srcRegion >= len(regions) || dstRegion < 0 || dstRegion >= len(regions) {
		return nil, 0, ErrComponentIndex
	}
	targets := make(map[NodeID]struct{}, len(regions[dstRegion]))
	for _, id := range regions[dstRegion] {
		targets[id] = struct{}{}
	}

	return g.breach(regions[srcRegion], targets)
}

// breach is a multi-source 0-1 BFS: cost-0 moves go to the front of the
// deque and cost-1 moves (into a wall) to the back.
func (g *Grid) breach(sources []NodeID, targets map[NodeID]struct{}) ([]NodeID, int, error) {
	const inf = int(^uint(0) >> 1)
	n := len(g.nodes)
	dist := make([]int, n)
	prev := make([]NodeID, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = NoNode
	}

	dq := list.New()
	for _, s := range sources {
		d := g.wallCost(s)
		if d < dist[s] {
			dist[s] = d
			if d == 0 {
				dq.PushFront(s)
			} else {
				dq.PushBack(s)
			}
		}
	}

	target := NoNode
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(NodeID)
		if _, ok := targets[u]; ok {
			target = u
			break
		}
		for _, v := range g.nodes[u].neighbors {
			step := g.wallCost(v)
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target == NoNode {
		return nil, 0, ErrNoPath
	}
	var path []NodeID
	for at := target; at != NoNode; at = prev[at] {
		path = append([]NodeID{at}, path...)
	}

	return path, dist[target], nil
}

func (g *Grid) wallCost(id NodeID) int {
	if g.nodes[id].Wall {
		return 1
	}
	return 0
}
