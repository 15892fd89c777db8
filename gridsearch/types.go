// SPDX-License-Identifier: MIT

package gridsearch

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathfinder/gridgraph"
)

// Sentinel errors for grid searches.
var (
	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = errors.New("gridsearch: grid is nil")

	// ErrInvalidNode is returned when start or end is NoNode or not in the grid.
	ErrInvalidNode = errors.New("gridsearch: invalid start or end node")

	// ErrUnknownAlgorithm is returned by Lookup for an unregistered name.
	ErrUnknownAlgorithm = errors.New("gridsearch: unknown algorithm")

	// ErrNoPath is returned by Result.ShortestPath when the end was not reached.
	ErrNoPath = errors.New("gridsearch: end node not reachable")
)

// Algorithm is the contract every grid search satisfies.
type Algorithm interface {
	// Name is the registry key ("bfs", "dfs", "dijkstra", "astar").
	Name() string

	// CreateGridData builds a board for this algorithm. See gridgraph.NewGrid.
	CreateGridData(rows, cols int, start, end gridgraph.Position, walls []gridgraph.Position) (*gridgraph.GridData, error)

	// PerformAlgorithm searches g from start to end. It overwrites the Score
	// and Previous fields of every node.
	PerformAlgorithm(g *gridgraph.Grid, start, end gridgraph.NodeID) (*Result, error)
}

// Result is the outcome of one search.
type Result struct {
	// Algorithm names the search that produced the result.
	Algorithm string
	// Visited lists expanded nodes in expansion order. It never holds a wall
	// other than a walled start.
	Visited []gridgraph.NodeID
	// Path runs from just after the start up to the end. Empty when the end
	// was not reached or equals the start.
	Path []gridgraph.NodeID
	// Reached reports whether the end node was expanded.
	Reached bool
}

// ShortestPath returns Path, or ErrNoPath if the end was not reached.
func (r *Result) ShortestPath() ([]gridgraph.NodeID, error) {
	if !r.Reached {
		return nil, fmt.Errorf("%w (%s, %d nodes visited)", ErrNoPath, r.Algorithm, len(r.Visited))
	}

	return r.Path, nil
}

// Options configures a search.
type Options struct {
	// Logger receives one debug entry per run. Defaults to zap.NewNop.
	Logger *zap.Logger

	// OnVisit is called each time a node is expanded.
	OnVisit func(id gridgraph.NodeID)

	// OnDiscover is called each time a node is pushed to the frontier.
	OnDiscover func(id gridgraph.NodeID)
}

// Option configures a search via functional arguments.
type Option func(*Options)

// DefaultOptions returns a no-op logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger:     zap.NewNop(),
		OnVisit:    func(gridgraph.NodeID) {},
		OnDiscover: func(gridgraph.NodeID) {},
	}
}

// WithLogger routes debug output to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnVisit registers a callback run on every expanded node.
func WithOnVisit(fn func(id gridgraph.NodeID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnDiscover registers a callback run on every frontier push.
func WithOnDiscover(fn func(id gridgraph.NodeID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}
