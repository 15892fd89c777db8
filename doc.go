// Package pathfinder is an in-memory toolkit for searching paths on grids and
// general graphs.
//
// What is inside?
//
//   - Grid boards: rectangular mazes with walls, ASCII/YAML layouts, regions
//   - Grid searches: BFS, DFS, Dijkstra and A* behind one Algorithm interface
//   - Generic graphs: positional Vertex/Edge graph, directed or undirected
//   - Shortest paths: Dijkstra over any edge payload, with an adaptable heap
//   - Traversals: BFS, DFS, topological sort, cycle detection
//   - Interop: conversion to and from gonum graphs
//
// Packages:
//
//	pq/         — heap priority queue and adaptable (locator-based) priority queue
//	core/       — generic Graph[V, E], Vertex and Edge types
//	dijkstra/   — single-source shortest paths on core.Graph
//	bfs/, dfs/  — generic traversals on core.Graph
//	gridgraph/  — grid board, layouts, regions, wall breaching, core.Graph view
//	gridsearch/ — BFS/DFS/Dijkstra/A* on gridgraph boards
//	converters/ — core.Graph ⇄ gonum graph
//
// Quick ASCII example:
//
//	S . . .
//	. # # .
//	. . . E
//
//	l, _ := gridgraph.ParseLayout("S...\n.##.\n...E")
//	data, _ := l.Build()
//	res, _ := gridsearch.Run(gridsearch.AStar(), data)
//	path, _ := res.ShortestPath() // 5 steps
//
// Searches never log unless handed a *zap.Logger through WithLogger.
//
//	go get github.com/katalvlaran/pathfinder
package pathfinder
