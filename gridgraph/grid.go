// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"iter"
)

// NewGrid builds a rows×cols board, flags walls, and resolves start and end.
//
// Construction is a single row-major pass. Node (r,c) appends its left
// neighbor when c > 0 and its top neighbor when r > 0, and each of those
// appends (r,c) back, so every node ends up with neighbors ordered left, top,
// right, bottom. Walls are flagged afterwards; duplicate wall positions are
// harmless.
//
// Start and end are resolved independently and may coincide. A start or end
// outside the board yields NoNode rather than an error.
//
// Errors: ErrEmptyGrid if rows < 1 or cols < 1; ErrOutOfBounds for a wall
// outside the board.
// Complexity: O(rows×cols + len(walls)).
func NewGrid(rows, cols int, start, end Position, walls []Position) (*GridData, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %d×%d", ErrEmptyGrid, rows, cols)
	}

	g := &Grid{rows: rows, cols: cols, nodes: make([]Node, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := g.id(r, c)
			n := &g.nodes[id]
			n.Position = Position{Row: r, Col: c}
			n.Previous = NoNode
			if c > 0 {
				left := id - 1
				n.neighbors = append(n.neighbors, left)
				g.nodes[left].neighbors = append(g.nodes[left].neighbors, id)
			}
			if r > 0 {
				top := id - NodeID(cols)
				n.neighbors = append(n.neighbors, top)
				g.nodes[top].neighbors = append(g.nodes[top].neighbors, id)
			}
		}
	}

	for _, w := range walls {
		if err := g.SetWall(w, true); err != nil {
			return nil, err
		}
	}

	data := &GridData{Grid: g, Start: NoNode, End: NoNode}
	if id, ok := g.ID(start); ok {
		data.Start = id
	}
	if id, ok := g.ID(end); ok {
		data.End = id
	}

	return data, nil
}

func (g *Grid) id(r, c int) NodeID { return NodeID(r*g.cols + c) }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns rows×cols.
func (g *Grid) Len() int { return len(g.nodes) }

// InBounds reports whether p lies on the board.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Valid reports whether id addresses a node of g.
func (g *Grid) Valid(id NodeID) bool { return id >= 0 && int(id) < len(g.nodes) }

// ID maps a position to its NodeID.
func (g *Grid) ID(p Position) (NodeID, bool) {
	if !g.InBounds(p) {
		return NoNode, false
	}

	return g.id(p.Row, p.Col), true
}

// Node returns the node for id, or nil if id is not valid.
// The pointer stays valid for the lifetime of g.
func (g *Grid) Node(id NodeID) *Node {
	if !g.Valid(id) {
		return nil
	}

	return &g.nodes[id]
}

// Position returns the position of id. It panics if id is not valid.
func (g *Grid) Position(id NodeID) Position {
	return g.nodes[id].Position
}

// Positions maps a sequence of IDs to their positions.
func (g *Grid) Positions(ids []NodeID) []Position {
	out := make([]Position, len(ids))
	for i, id := range ids {
		out[i] = g.nodes[id].Position
	}

	return out
}

// Nodes yields every node with its ID in row-major order.
func (g *Grid) Nodes() iter.Seq2[NodeID, *Node] {
	return func(yield func(NodeID, *Node) bool) {
		for i := range g.nodes {
			if !yield(NodeID(i), &g.nodes[i]) {
				return
			}
		}
	}
}

// Rows2D returns the node IDs grouped by row.
func (g *Grid) Rows2D() [][]NodeID {
	out := make([][]NodeID, g.rows)
	for r := range out {
		out[r] = make([]NodeID, g.cols)
		for c := range out[r] {
			out[r][c] = g.id(r, c)
		}
	}

	return out
}

// SetWall flags or clears the wall at p.
func (g *Grid) SetWall(p Position, wall bool) error {
	id, ok := g.ID(p)
	if !ok {
		return fmt.Errorf("%w: wall at %s on %d×%d grid", ErrOutOfBounds, p, g.rows, g.cols)
	}
	g.nodes[id].Wall = wall

	return nil
}

// Walls returns the IDs of every wall in row-major order.
func (g *Grid) Walls() []NodeID {
	var out []NodeID
	for i := range g.nodes {
		if g.nodes[i].Wall {
			out = append(out, NodeID(i))
		}
	}

	return out
}

// Reset clears every node's Score and Previous link.
func (g *Grid) Reset() {
	for i := range g.nodes {
		g.nodes[i].Score = Score{}
		g.nodes[i].Previous = NoNode
	}
}

// Clone returns an independent copy of g. Adjacency lists are immutable and
// shared; walls, scores and predecessors are copied.
func (g *Grid) Clone() *Grid {
	nodes := make([]Node, len(g.nodes))
	copy(nodes, g.nodes)

	return &Grid{rows: g.rows, cols: g.cols, nodes: nodes}
}
