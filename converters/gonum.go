package converters

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/pathfinder/core"
)

// Sentinel errors for conversions.
var (
	// ErrNilGraph indicates a nil source graph.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrNilWeightFunc indicates a nil weight extractor.
	ErrNilWeightFunc = errors.New("converters: weight function is nil")
)

// GonumGraph is a gonum weighted graph plus the vertex↔node-ID mapping used to build it.
type GonumGraph[V any] struct {
	graph.Weighted

	ids      map[*core.Vertex[V]]int64
	vertices []*core.Vertex[V]
}

// NodeOf returns the gonum node for v, or nil if v was not converted.
func (gg *GonumGraph[V]) NodeOf(v *core.Vertex[V]) graph.Node {
	id, ok := gg.ids[v]
	if !ok {
		return nil
	}

	return gg.Weighted.Node(id)
}

// VertexOf returns the core vertex behind gonum node id, or nil.
func (gg *GonumGraph[V]) VertexOf(id int64) *core.Vertex[V] {
	if id < 0 || id >= int64(len(gg.vertices)) {
		return nil
	}

	return gg.vertices[id]
}

// ToGonum exports g as a simple.WeightedUndirectedGraph or
// simple.WeightedDirectedGraph, matching g.Directed(). Missing edges weigh +Inf.
// Complexity: O(V + E).
func ToGonum[V, E any](g *core.Graph[V, E], weight func(E) float64) (*GonumGraph[V], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if weight == nil {
		return nil, ErrNilWeightFunc
	}

	var builder interface {
		graph.Weighted
		AddNode(graph.Node)
		SetWeightedEdge(graph.WeightedEdge)
	}
	if g.Directed() {
		builder = simple.NewWeightedDirectedGraph(0, math.Inf(1))
	} else {
		builder = simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	}

	out := &GonumGraph[V]{
		Weighted: builder,
		ids:      make(map[*core.Vertex[V]]int64, g.VertexCount()),
		vertices: make([]*core.Vertex[V], 0, g.VertexCount()),
	}
	for v := range g.Vertices() {
		id := int64(len(out.vertices))
		out.ids[v] = id
		out.vertices = append(out.vertices, v)
		builder.AddNode(simple.Node(id))
	}
	for _, e := range g.Edges() {
		from, to := e.Endpoints()
		if from == to {
			continue
		}
		builder.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(out.ids[from]),
			T: simple.Node(out.ids[to]),
			W: weight(e.Element()),
		})
	}

	return out, nil
}

// FromGonum imports a gonum weighted graph. Vertex payloads are the gonum
// node IDs; edge payloads are the gonum weights. directed selects whether
// each gonum edge is inserted once (directed) or as one undirected edge.
// Complexity: O(V log V + E).
func FromGonum(src graph.Weighted, directed bool) (*core.Graph[int64, float64], error) {
	if src == nil {
		return nil, ErrNilGraph
	}

	g := core.NewGraph[int64, float64](core.WithDirected(directed))
	nodes := sortedNodes(src.Nodes())

	byID := make(map[int64]*core.Vertex[int64], len(nodes))
	for _, n := range nodes {
		byID[n.ID()] = g.InsertVertex(n.ID())
	}
	for _, n := range nodes {
		for _, t := range sortedNodes(src.From(n.ID())) {
			w, ok := src.Weight(n.ID(), t.ID())
			if !ok {
				continue
			}
			if _, err := g.InsertEdge(byID[n.ID()], byID[t.ID()], w); err != nil {
				return nil, fmt.Errorf("converters: edge %d→%d: %w", n.ID(), t.ID(), err)
			}
		}
	}

	return g, nil
}

// sortedNodes drains it and orders the nodes by ascending ID.
func sortedNodes(it graph.Nodes) []graph.Node {
	nodes := graph.NodesOf(it)
	slices.SortFunc(nodes, func(a, b graph.Node) int { return cmp.Compare(a.ID(), b.ID()) })

	return nodes
}
