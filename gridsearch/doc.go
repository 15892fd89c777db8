// SPDX-License-Identifier: MIT

// Package gridsearch runs path searches over a gridgraph.Grid.
//
// Four algorithms share one engine and differ only in their frontier and
// relaxation rule:
//
//	Algorithm  Frontier                Expansion order                Guarantee
//	bfs        FIFO queue              discovery order                shortest path in steps
//	dfs        LIFO stack              most recently pushed first     some path
//	dijkstra   adaptable priority      smallest distance g            shortest path in steps
//	astar      adaptable priority      smallest f = g + h             shortest path in steps
//
// Every step costs 1 and h is the Manhattan distance to the end, which never
// overestimates on a 4-connected board.
//
// The engine:
//
//  1. Resets every node (Score and Previous) so nothing leaks from an earlier run.
//  2. Pops nodes from the frontier. A node already expanded is skipped, and so
//     is a wall, unless it is the start node. Walls can still be discovered
//     and pushed; refusing to expand them is the only place wall semantics
//     are enforced.
//  3. Records each expanded node in Result.Visited. Once the end node is
//     expanded the run stops; frontier members still waiting are dropped.
//  4. Walks Previous links back from the end to rebuild the path, which runs
//     from just after the start up to and including the end.
//
// If the end is never expanded, Result.Reached is false and Result.Path is
// empty; Result.ShortestPath reports ErrNoPath. A start equal to the end is
// reached immediately with an empty path.
//
// The priority frontiers keep one pq.Locator per node. Pushing a node that is
// already queued updates its priority in place, so queue membership is
// decided by node identity rather than by searching the queue.
//
// Runs are synchronous and not cancellable. Node state lives in the Grid, so
// concurrent searches need separate grids (see gridgraph.Grid.Clone).
package gridsearch
