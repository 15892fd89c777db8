// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// over the generic core.Graph.
//
// The frontier is a pq.AdaptableQueue seeded with every vertex, keyed by the
// negated tentative distance (the queue is a max-heap). Each vertex keeps the
// locator returned by Add, so a strictly better candidate distance is applied
// in place with Update instead of pushing a duplicate entry.
//
// The main loop drains the queue. At the moment a vertex is dequeued its
// tentative distance is final; vertices that were never reached leave the
// queue last with distance +Inf.
//
// Complexity:
//
//   - Time:  O((V + E) log V). V dequeues, at most E updates, each O(log V).
//   - Space: O(V) for the queue, the locator table and the result maps.
//
// Validation (in order):
//
//	ErrNilGraph        - g is nil.
//	ErrNilWeightFunc   - weight is nil.
//	ErrVertexNotFound  - source is nil or not a vertex of g.
//	ErrBadMaxDistance  - WithMaxDistance received a negative or NaN cap.
//	ErrBadInfThreshold - WithInfEdgeThreshold received a non-positive or NaN threshold.
//	ErrNegativeWeight  - an edge weight is below zero (O(E) pre-scan).
//	ErrBadWeight       - an edge weight is NaN (O(E) pre-scan).
//
// The pre-scan can be disabled with WithSkipValidation, in which case
// non-negative weights become a caller contract and violating it yields
// undefined distances.
//
// Options:
//
//	WithReturnPath()         - also return the predecessor map.
//	WithMaxDistance(x)       - never relax a vertex past distance x; it stays +Inf.
//	WithInfEdgeThreshold(t)  - treat edges with weight >= t as impassable.
//	WithSkipValidation()     - skip the weight pre-scan.
//	WithLogger(l)            - structured debug logging (zap.NewNop by default).
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, a, func(w float64) float64 { return w },
//	    dijkstra.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	path, err := dijkstra.PathTo(prev, a, d)
package dijkstra
