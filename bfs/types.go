package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/pathfinder/core"
)

var (
	// ErrGraphNil reports a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound reports a nil start handle or one owned by a different graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation reports an option value BFS cannot honor.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a vertex outside the BFS tree.
	ErrNoPath = errors.New("bfs: no path")
)

// Option adjusts a single BFS call. A bad value is remembered and turned
// into ErrOptionViolation when BFS starts.
type Option[V any] func(*Options[V])

// Options is the resolved configuration of one walk. Every hook is non-nil
// after DefaultOptions, so the walker calls them unconditionally.
type Options[V any] struct {
	Ctx context.Context

	// OnEnqueue sees each vertex as it is claimed, with its depth.
	OnEnqueue func(v *core.Vertex[V], depth int)

	// OnDequeue sees each vertex just before OnVisit.
	OnDequeue func(v *core.Vertex[V], depth int)

	// OnVisit runs once per reached vertex; a non-nil error stops the walk.
	OnVisit func(v *core.Vertex[V], depth int) error

	// MaxDepth bounds the depth of enqueued vertices; 0 means unbounded.
	MaxDepth int

	// FilterNeighbor decides whether the edge from→to may be followed.
	FilterNeighbor func(from, to *core.Vertex[V]) bool

	err error
}

// DefaultOptions returns an unbounded walk with no-op hooks, an accept-all
// filter and context.Background().
func DefaultOptions[V any]() Options[V] {
	return Options[V]{
		Ctx:            context.Background(),
		OnEnqueue:      func(*core.Vertex[V], int) {},
		OnDequeue:      func(*core.Vertex[V], int) {},
		OnVisit:        func(*core.Vertex[V], int) error { return nil },
		FilterNeighbor: func(_, _ *core.Vertex[V]) bool { return true },
	}
}

// WithContext makes the walk stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext[V any](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue installs fn as the enqueue observer. nil keeps the no-op.
func WithOnEnqueue[V any](fn func(v *core.Vertex[V], depth int)) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue installs fn as the dequeue observer. nil keeps the no-op.
func WithOnDequeue[V any](fn func(v *core.Vertex[V], depth int)) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit installs fn as the visit hook. nil keeps the no-op.
func WithOnVisit[V any](fn func(v *core.Vertex[V], depth int) error) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth keeps vertices deeper than d out of the queue. d == 0 lifts
// the bound; d < 0 is rejected with ErrOptionViolation.
func WithMaxDepth[V any](d int) Option[V] {
	return func(o *Options[V]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor follows the edge from→to only when fn returns true.
func WithFilterNeighbor[V any](fn func(from, to *core.Vertex[V]) bool) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result is the BFS tree rooted at the start handle.
type Result[V any] struct {
	Order  []*core.Vertex[V]
	Depth  map[*core.Vertex[V]]int
	Parent map[*core.Vertex[V]]*core.Vertex[V]
}

// PathTo walks Parent back from dest and returns start..dest.
func (r *Result[V]) PathTo(dest *core.Vertex[V]) ([]*core.Vertex[V], error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, ErrNoPath
	}
	path := []*core.Vertex[V]{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
