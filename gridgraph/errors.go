// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates rows or cols below one.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates ASCII rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a position outside the board.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
	// ErrStartIsWall indicates the start position is also listed as a wall.
	ErrStartIsWall = errors.New("gridgraph: start position is a wall")
	// ErrEndIsWall indicates the end position is also listed as a wall.
	ErrEndIsWall = errors.New("gridgraph: end position is a wall")
	// ErrInvalidNode indicates a NodeID outside the arena.
	ErrInvalidNode = errors.New("gridgraph: invalid node id")
	// ErrComponentIndex indicates a requested region index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no breach path exists between the given cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)

// ErrBadMap indicates an ASCII map with an unknown glyph or a repeated S/E marker.
var ErrBadMap = errors.New("gridgraph: malformed ASCII map")
