// SPDX-License-Identifier: MIT

package gridsearch

import (
	"math"

	"github.com/katalvlaran/pathfinder/gridgraph"
)

// strategy is what distinguishes one search from another: how node scores
// start out, which frontier is used, and when a neighbor is (re)pushed.
type strategy interface {
	name() string
	// prepare initializes scores after the engine's reset.
	prepare(g *gridgraph.Grid, start, end gridgraph.NodeID)
	newFrontier(g *gridgraph.Grid) frontier
	// relax is called for each unexpanded neighbor v of the expanded node u.
	// It updates v's Score and Previous and reports whether to push v.
	relax(g *gridgraph.Grid, u, v gridgraph.NodeID) bool
}

// breadthFirst fixes the predecessor at first discovery, which keeps the
// path shortest in step count.
type breadthFirst struct{}

func (breadthFirst) name() string { return NameBFS }

func (breadthFirst) prepare(*gridgraph.Grid, gridgraph.NodeID, gridgraph.NodeID) {}

func (breadthFirst) newFrontier(*gridgraph.Grid) frontier { return &fifo{} }

func (breadthFirst) relax(g *gridgraph.Grid, u, v gridgraph.NodeID) bool {
	nv := g.Node(v)
	if nv.Score.Discovered {
		return false
	}
	nv.Previous = u
	nv.Score.Distance = g.Node(u).Score.Distance + 1

	return true
}

// depthFirst lets the latest pusher win the predecessor and allows the same
// node on the stack more than once; stale copies are skipped on pop.
type depthFirst struct{}

func (depthFirst) name() string { return NameDFS }

func (depthFirst) prepare(*gridgraph.Grid, gridgraph.NodeID, gridgraph.NodeID) {}

func (depthFirst) newFrontier(*gridgraph.Grid) frontier { return &lifo{} }

func (depthFirst) relax(g *gridgraph.Grid, u, v gridgraph.NodeID) bool {
	nv := g.Node(v)
	nv.Previous = u
	nv.Score.Distance = g.Node(u).Score.Distance + 1

	return true
}

// bestFirst covers Dijkstra (no heuristic) and A* (Manhattan heuristic).
// A neighbor is pushed only on a strictly better distance.
type bestFirst struct {
	label     string
	heuristic bool
}

func (b bestFirst) name() string { return b.label }

func (b bestFirst) prepare(g *gridgraph.Grid, start, end gridgraph.NodeID) {
	target := g.Position(end)
	for id, n := range g.Nodes() {
		n.Score.Distance = math.Inf(1)
		if id == start {
			n.Score.Distance = 0
		}
		if b.heuristic {
			n.Score.Heuristic = float64(n.Position.Manhattan(target))
		}
		n.Score.Total = n.Score.Distance + n.Score.Heuristic
	}
}

func (b bestFirst) newFrontier(g *gridgraph.Grid) frontier {
	return newPriority(g.Len(), func(id gridgraph.NodeID) float64 {
		return g.Node(id).Score.Total
	})
}

func (b bestFirst) relax(g *gridgraph.Grid, u, v gridgraph.NodeID) bool {
	nv := g.Node(v)
	candidate := g.Node(u).Score.Distance + 1
	if candidate >= nv.Score.Distance {
		return false
	}
	nv.Previous = u
	nv.Score.Distance = candidate
	nv.Score.Total = candidate + nv.Score.Heuristic

	return true
}
