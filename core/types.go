package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNilVertex indicates a nil *Vertex was passed.
	ErrNilVertex = errors.New("core: vertex is nil")

	// ErrVertexNotFound indicates an operation referenced a vertex that was not
	// inserted into this graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNotEndpoint indicates Edge.Opposite was given a vertex that is neither
	// the edge's origin nor its destination.
	ErrNotEndpoint = errors.New("core: vertex is not an endpoint of edge")
)

// Vertex is an opaque vertex handle wrapping a caller payload.
// Identity is pointer identity, not payload equality.
type Vertex[V any] struct {
	element V
}

// Element returns the payload the vertex was created with.
func (v *Vertex[V]) Element() V { return v.element }

// Edge joins origin to destination and carries a payload of type E.
type Edge[V, E any] struct {
	origin      *Vertex[V]
	destination *Vertex[V]
	element     E
}

// Endpoints returns (origin, destination).
func (e *Edge[V, E]) Endpoints() (*Vertex[V], *Vertex[V]) {
	return e.origin, e.destination
}

// Element returns the edge payload.
func (e *Edge[V, E]) Element() E { return e.element }

// SetElement replaces the edge payload. Undirected graphs share one *Edge
// between both endpoints, so the change is visible from either side.
func (e *Edge[V, E]) SetElement(element E) { e.element = element }

// Opposite returns the endpoint that is not v.
// For a self-loop the opposite of the vertex is the vertex itself.
func (e *Edge[V, E]) Opposite(v *Vertex[V]) (*Vertex[V], error) {
	switch v {
	case e.origin:
		return e.destination, nil
	case e.destination:
		return e.origin, nil
	default:
		return nil, ErrNotEndpoint
	}
}

// GraphOption configures a Graph before creation.
type GraphOption func(cfg *graphConfig)

type graphConfig struct {
	directed   bool
	allowLoops bool
}

// WithDirected sets whether the graph is directed (true) or undirected (false).
func WithDirected(directed bool) GraphOption {
	return func(cfg *graphConfig) { cfg.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(cfg *graphConfig) { cfg.allowLoops = true }
}

// adjacency maps neighbor → edge and remembers the order neighbors were linked.
type adjacency[V, E any] struct {
	byNeighbor map[*Vertex[V]]*Edge[V, E]
	order      []*Vertex[V]
}

func newAdjacency[V, E any]() *adjacency[V, E] {
	return &adjacency[V, E]{byNeighbor: make(map[*Vertex[V]]*Edge[V, E])}
}

// set links neighbor → e, replacing an existing edge in place.
// It reports whether the neighbor was already linked.
func (a *adjacency[V, E]) set(neighbor *Vertex[V], e *Edge[V, E]) bool {
	_, existed := a.byNeighbor[neighbor]
	if !existed {
		a.order = append(a.order, neighbor)
	}
	a.byNeighbor[neighbor] = e

	return existed
}

func (a *adjacency[V, E]) len() int { return len(a.byNeighbor) }

// Graph is a generic directed or undirected graph.
//
// out holds every vertex's outgoing table. in is only populated for directed
// graphs; undirected queries branch on directed and read out for both
// directions.
type Graph[V, E any] struct {
	directed   bool
	allowLoops bool

	vertices []*Vertex[V]
	out      map[*Vertex[V]]*adjacency[V, E]
	in       map[*Vertex[V]]*adjacency[V, E]
	loops    int // number of self-loop edges
}

// NewGraph creates an empty Graph. By default the graph is undirected and
// rejects self-loops.
// Complexity: O(1).
func NewGraph[V, E any](opts ...GraphOption) *Graph[V, E] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	g := &Graph[V, E]{
		directed:   cfg.directed,
		allowLoops: cfg.allowLoops,
		out:        make(map[*Vertex[V]]*adjacency[V, E]),
	}
	if g.directed {
		g.in = make(map[*Vertex[V]]*adjacency[V, E])
	}

	return g
}
