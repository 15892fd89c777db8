// SPDX-License-Identifier: MIT

// Package gridgraph models a rectangular board of cells as an arena of nodes
// with 4-directional adjacency, the shared input of every grid search.
//
// What:
//
//   - Grid stores rows×cols nodes in row-major order. A NodeID is the index of
//     a node in that arena; NoNode marks "no node" (missing predecessor, start
//     or end outside the board).
//   - Every Node carries its Position, a Wall flag, the Previous link written
//     by searches, a Score record, and its neighbor IDs in the fixed order
//     left, top, right, bottom (only those inside the board).
//   - NewGrid builds the lattice in one row-major pass: each node links its left
//     and top neighbor and the neighbor links back, which yields full
//     4-directional adjacency without a second pass. Walls are flagged after
//     the lattice exists, so a wall keeps its adjacency and can still be
//     discovered; searches refuse to expand it.
//
// Also:
//
//   - Layout describes a board (dimensions, start, end, walls). It decodes from
//     YAML (DecodeLayout) or an ASCII map (ParseLayout) and validates the
//     preconditions a caller should check before searching.
//   - Regions and Connected answer reachability questions over open cells.
//   - BreachWalls and BreachRegions find the fewest walls to knock down to
//     join two cells or two regions (0-1 BFS).
//   - ToCoreGraph exports open cells to a core.Graph for the generic algorithms.
//
// Complexity:
//
//   - NewGrid:             O(R×C + W), Memory: O(R×C).
//   - Regions / Connected: O(R×C),     Memory: O(R×C).
//   - BreachWalls:         O(R×C),     Memory: O(R×C).
//   - ToCoreGraph:         O(R×C),     Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid:      rows or cols below one.
//   - ErrNonRectangular: ASCII rows of differing lengths.
//   - ErrOutOfBounds:    a wall (or a validated start/end) outside the board.
//   - ErrStartIsWall / ErrEndIsWall: Layout.Validate found a wall on start/end.
//   - ErrInvalidNode:    a NodeID outside the arena.
//   - ErrComponentIndex: a region index out of range.
//   - ErrNoPath:         no breach path exists.
//
// A Grid is not safe for concurrent searches: nodes hold per-search scoring
// state. Give each concurrent search its own Clone.
package gridgraph
