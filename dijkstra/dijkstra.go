package dijkstra

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/pq"
)

// Dijkstra computes shortest distances from source to every vertex of g.
// weight extracts a non-negative cost from each edge payload.
//
// Returns:
//
//   - dist: every vertex of g mapped to its shortest distance (+Inf if unreachable).
//   - prev: predecessor map if WithReturnPath was given, nil otherwise.
//     prev[v] == u means the shortest path to v ends with the edge u→v.
//     The source and unreachable vertices have no entry.
//   - err:  see the package documentation for the validation order.
//
// Complexity: O((V + E) log V) time, O(V) space.
func Dijkstra[V, E any](
	g *core.Graph[V, E],
	source *core.Vertex[V],
	weight func(E) float64,
	opts ...Option,
) (map[*core.Vertex[V]]float64, map[*core.Vertex[V]]*core.Vertex[V], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if weight == nil {
		return nil, nil, ErrNilWeightFunc
	}
	if source == nil || !g.HasVertex(source) {
		return nil, nil, ErrVertexNotFound
	}
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}
	if !cfg.SkipValidation {
		if err := scanWeights(g, weight); err != nil {
			return nil, nil, err
		}
	}

	r := &runner[V, E]{
		g:         g,
		weight:    weight,
		options:   cfg,
		frontier:  pq.NewAdaptable[*core.Vertex[V]](),
		tentative: make(map[*core.Vertex[V]]float64, g.VertexCount()),
		locators:  make(map[*core.Vertex[V]]pq.Locator, g.VertexCount()),
		cloud:     make(map[*core.Vertex[V]]float64, g.VertexCount()),
	}
	if cfg.ReturnPath {
		r.prev = make(map[*core.Vertex[V]]*core.Vertex[V], g.VertexCount())
	}

	r.init(source)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	cfg.Logger.Debug("dijkstra: finished",
		zap.Int("vertices", g.VertexCount()),
		zap.Int("reachable", r.reachable),
		zap.Bool("capped", r.capped),
	)

	return r.cloud, r.prev, nil
}

// ShortestPaths runs Dijkstra on a graph whose edge payload already is the weight.
func ShortestPaths[V any, W Weight](
	g *core.Graph[V, W],
	source *core.Vertex[V],
	opts ...Option,
) (map[*core.Vertex[V]]float64, map[*core.Vertex[V]]*core.Vertex[V], error) {
	return Dijkstra(g, source, func(w W) float64 { return float64(w) }, opts...)
}

// scanWeights rejects negative and NaN weights before any work is done.
func scanWeights[V, E any](g *core.Graph[V, E], weight func(E) float64) error {
	for _, e := range g.Edges() {
		w := weight(e.Element())
		from, to := e.Endpoints()
		switch {
		case math.IsNaN(w):
			return fmt.Errorf("%w: edge %v→%v", ErrBadWeight, from.Element(), to.Element())
		case w < 0:
			return fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, from.Element(), to.Element(), w)
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V, E any] struct {
	g       *core.Graph[V, E]
	weight  func(E) float64
	options Options

	frontier  *pq.AdaptableQueue[*core.Vertex[V]] // keyed by -tentative distance
	tentative map[*core.Vertex[V]]float64         // best known distance so far
	locators  map[*core.Vertex[V]]pq.Locator      // frontier handle per vertex
	cloud     map[*core.Vertex[V]]float64         // finalized distances
	prev      map[*core.Vertex[V]]*core.Vertex[V] // nil unless ReturnPath

	reachable int
	capped    bool
}

// init seeds the frontier with every vertex: 0 for the source, +Inf otherwise.
func (r *runner[V, E]) init(source *core.Vertex[V]) {
	for v := range r.g.Vertices() {
		d := math.Inf(1)
		if v == source {
			d = 0
		}
		r.tentative[v] = d
		r.locators[v] = r.frontier.Add(-d, v)
	}
}

// process drains the frontier, finalizing one vertex per iteration.
func (r *runner[V, E]) process() error {
	for !r.frontier.IsEmpty() {
		key, u, err := r.frontier.Dequeue()
		if err != nil {
			return fmt.Errorf("dijkstra: dequeue: %w", err)
		}
		delete(r.locators, u)
		d := -key

		r.cloud[u] = d
		if math.IsInf(d, 1) {
			continue
		}
		r.reachable++
		if err := r.relax(u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the tentative distance of every neighbor of u that
// is still in the frontier.
func (r *runner[V, E]) relax(u *core.Vertex[V], du float64) error {
	for e := range r.g.IncidentEdges(u, true) {
		v, err := e.Opposite(u)
		if err != nil {
			return fmt.Errorf("dijkstra: edge of %v: %w", u.Element(), err)
		}
		if _, done := r.cloud[v]; done {
			continue
		}
		w := r.weight(e.Element())
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		candidate := du + w
		if candidate > r.options.MaxDistance {
			// Beyond the cap: v keeps +Inf and gets no predecessor unless
			// another edge brings it within range.
			r.capped = true
			continue
		}
		if candidate >= r.tentative[v] {
			continue
		}
		r.tentative[v] = candidate
		if r.prev != nil {
			r.prev[v] = u
		}
		if err := r.frontier.Update(r.locators[v], -candidate, v); err != nil {
			return fmt.Errorf("dijkstra: update %v: %w", v.Element(), err)
		}
	}

	return nil
}
