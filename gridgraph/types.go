// SPDX-License-Identifier: MIT

package gridgraph

import "fmt"

// Position addresses a cell by zero-based row and column.
type Position struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// String renders the position as "(row,col)".
func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Manhattan returns |Δrow| + |Δcol|.
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// NodeID indexes a node in its Grid's arena.
type NodeID int

// NoNode marks the absence of a node.
const NoNode NodeID = -1

// Score is the scoring record shared by all searches.
// For A*: Distance is g, Heuristic is h and Total is f = g + h.
type Score struct {
	Distance   float64
	Heuristic  float64
	Total      float64
	Visited    bool // expanded
	Discovered bool // pushed to the frontier at least once
}

// Node is one cell of the board.
type Node struct {
	Position Position
	Wall     bool
	Previous NodeID // predecessor written by the last search, NoNode if none
	Score    Score

	neighbors []NodeID
}

// Neighbors returns the IDs of the in-bounds neighbors in the order left,
// top, right, bottom. The slice is shared; callers must not modify it.
func (n *Node) Neighbors() []NodeID { return n.neighbors }

// Grid is an arena of rows×cols nodes in row-major order.
type Grid struct {
	rows, cols int
	nodes      []Node
}

// GridData is what NewGrid hands to a search: the board plus the resolved
// start and end. Start or End is NoNode when the requested position lies
// outside the board; callers must check before searching.
type GridData struct {
	Grid  *Grid
	Start NodeID
	End   NodeID
}
