// Package dfs goes deep before wide on a core.Graph, and builds two classic
// results on top of that: a topological order and a cycle test.
//
// DFS(g, start, opts...) descends from one vertex handle; with
// WithFullTraversal it ignores start and restarts from every vertex still
// unseen, in insertion order, so the whole graph becomes a forest. The
// Result holds the finish (post-order) sequence, each vertex's depth in its
// own tree, tree parents, and the set of vertices reached. Directed graphs
// are followed forward only; undirected graphs along every edge. Self-loops
// never form a tree edge.
//
// Hooks and limits
//
//	dfs.DFS(g, root,
//		dfs.WithMaxDepth[string](2),
//		dfs.WithOnExit(func(v *core.Vertex[string]) error { ... }),
//	)
//
// WithOnVisit fires on entry and WithOnExit after the subtree is done; an
// error from either stops the walk and empties Order. WithMaxDepth(0) keeps
// the walk at the root, negative means unlimited. WithFilterNeighbor hides
// vertices, and Result.SkippedNeighbors counts how often it did. WithContext
// is checked on entry to every vertex.
//
// # Ordering and cycles
//
// TopologicalSort(g) needs a directed graph (ErrUndirected otherwise) and
// returns reversed finish order, or ErrCycleDetected when some vertex is
// re-entered while still open; a self-loop is such a cycle. HasCycle(g)
// answers the same question for directed graphs and, on undirected graphs,
// looks for an edge back to an already-seen vertex other than the tree parent.
//
// Recursion depth equals the longest tree path; the work is O(V + E).
package dfs
