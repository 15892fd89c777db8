package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/pathfinder/core"
)

// Colors used by TopologicalSort and HasCycle.
const (
	White = iota // unseen
	Gray         // open: on the current recursion path
	Black        // closed: every successor finished
)

var (
	// ErrGraphNil reports a nil *core.Graph handed to any entry point.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound reports a nil or foreign start handle in
	// single-root mode.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected means TopologicalSort re-entered an open vertex.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirected means TopologicalSort got a graph without edge direction.
	ErrUndirected = errors.New("dfs: TopologicalSort requires directed graph")
)

// Option adjusts a single DFS call.
type Option[V any] func(*Options[V])

// Options is the resolved configuration of one DFS call. Unset hooks stay nil
// and are skipped.
type Options[V any] struct {
	Ctx context.Context

	// OnVisit runs when a vertex is entered, before any of its neighbors.
	OnVisit func(v *core.Vertex[V]) error

	// OnExit runs when a vertex's subtree is finished, just before the vertex
	// joins Result.Order.
	OnExit func(v *core.Vertex[V]) error

	// MaxDepth is the deepest tree level entered; -1 lifts the bound.
	MaxDepth int

	// FilterNeighbor returning false hides a neighbor from the walk.
	FilterNeighbor func(v *core.Vertex[V]) bool

	// FullTraversal grows a forest over every vertex instead of one tree.
	FullTraversal bool
}

// DefaultOptions describes one unbounded tree from the start handle.
func DefaultOptions[V any]() Options[V] {
	return Options[V]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext ends the walk with ctx.Err() once ctx is done; nil is ignored.
func WithContext[V any](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit sets the entry hook.
func WithOnVisit[V any](fn func(v *core.Vertex[V]) error) Option[V] {
	return func(o *Options[V]) {
		o.OnVisit = fn
	}
}

// WithOnExit sets the finish hook.
func WithOnExit[V any](fn func(v *core.Vertex[V]) error) Option[V] {
	return func(o *Options[V]) {
		o.OnExit = fn
	}
}

// WithMaxDepth stops descending below level limit; 0 keeps the walk at the root.
func WithMaxDepth[V any](limit int) Option[V] {
	return func(o *Options[V]) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips a neighbor when fn returns false; the skip is
// counted in Result.SkippedNeighbors.
func WithFilterNeighbor[V any](fn func(v *core.Vertex[V]) bool) Option[V] {
	return func(o *Options[V]) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal makes DFS restart from each unvisited vertex in
// insertion order. The start argument is then ignored.
func WithFullTraversal[V any]() Option[V] {
	return func(o *Options[V]) {
		o.FullTraversal = true
	}
}

// Result is the DFS tree (or forest) that was grown.
type Result[V any] struct {
	// Order is the finish sequence: children before their parent.
	Order []*core.Vertex[V]

	// Depth is measured from the root of the vertex's own tree.
	Depth map[*core.Vertex[V]]int

	// Parent holds tree edges child → parent; roots are absent.
	Parent map[*core.Vertex[V]]*core.Vertex[V]

	// Visited is the set of vertices entered.
	Visited map[*core.Vertex[V]]bool

	// SkippedNeighbors counts FilterNeighbor rejections over the whole call.
	SkippedNeighbors int
}
