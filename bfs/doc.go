// Package bfs walks a core.Graph layer by layer from one vertex handle.
//
// A walk records, for every vertex it reaches, the number of edges from the
// start (Result.Depth) and the vertex that first discovered it
// (Result.Parent). Result.Order lists vertices in the order they were taken
// off the queue. Because a vertex is claimed the moment it is enqueued, the
// parent chain is a shortest path in edge count, and Result.PathTo turns it
// into a slice of handles.
//
// Neighbors come from Graph.Neighbors(v, true): successors on a directed
// graph, every adjacent vertex on an undirected one. The graph yields them in
// link order, so two walks over the same graph produce the same Order.
//
// # Tuning a walk
//
// Options are generic in the vertex payload. Those that take a callback infer
// it; the rest need it spelled out:
//
//	bfs.BFS(g, start,
//		bfs.WithMaxDepth[string](3),
//		bfs.WithFilterNeighbor(func(from, to *core.Vertex[string]) bool { return to != blocked }),
//	)
//
// WithMaxDepth(0) leaves the walk unbounded; a negative depth makes BFS fail
// with ErrOptionViolation before touching the graph. WithOnEnqueue and
// WithOnDequeue observe the queue, WithOnVisit may stop the walk by returning
// an error, and WithContext lets a caller cancel between dequeues.
//
// # Failures
//
// A nil graph gives ErrGraphNil; a nil or foreign start handle gives
// ErrStartVertexNotFound. A hook error or a cancelled context ends the walk
// early and comes back wrapped, alongside whatever was collected so far.
// PathTo reports ErrNoPath for a vertex the walk never reached.
//
// Cost: O(V + E) time, O(V) extra memory.
package bfs
