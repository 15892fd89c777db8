// SPDX-License-Identifier: MIT

package gridsearch

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathfinder/gridgraph"
)

// search couples a strategy with the shared engine and implements Algorithm.
type search struct {
	strategy strategy
	options  Options
}

func newSearch(s strategy, opts []Option) *search {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &search{strategy: s, options: cfg}
}

// Name implements Algorithm.
func (s *search) Name() string { return s.strategy.name() }

// CreateGridData implements Algorithm.
func (s *search) CreateGridData(rows, cols int, start, end gridgraph.Position, walls []gridgraph.Position) (*gridgraph.GridData, error) {
	return gridgraph.NewGrid(rows, cols, start, end, walls)
}

// PerformAlgorithm implements Algorithm.
func (s *search) PerformAlgorithm(g *gridgraph.Grid, start, end gridgraph.NodeID) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.Valid(start) || !g.Valid(end) {
		return nil, fmt.Errorf("%w: start=%d end=%d on %d nodes", ErrInvalidNode, start, end, g.Len())
	}

	g.Reset()
	s.strategy.prepare(g, start, end)

	res := &Result{Algorithm: s.Name()}
	f := s.strategy.newFrontier(g)
	s.discover(g, f, start)

	for f.len() > 0 {
		u, _ := f.pop()
		n := g.Node(u)
		if n.Score.Visited || (n.Wall && u != start) {
			continue
		}
		n.Score.Visited = true
		res.Visited = append(res.Visited, u)
		s.options.OnVisit(u)

		if u == end {
			res.Reached = true
			break
		}
		for _, v := range n.Neighbors() {
			if g.Node(v).Score.Visited {
				continue
			}
			if s.strategy.relax(g, u, v) {
				s.discover(g, f, v)
			}
		}
	}

	if res.Reached {
		res.Path = backtrack(g, start, end)
	}

	s.options.Logger.Debug("gridsearch: done",
		zap.String("algorithm", res.Algorithm),
		zap.Int("visited", len(res.Visited)),
		zap.Bool("reached", res.Reached),
		zap.Int("path", len(res.Path)),
	)

	return res, nil
}

func (s *search) discover(g *gridgraph.Grid, f frontier, id gridgraph.NodeID) {
	g.Node(id).Score.Discovered = true
	f.push(id)
	s.options.OnDiscover(id)
}

// backtrack follows Previous links from end to start and returns the nodes
// after start, in order. The walk is bounded by the grid size.
func backtrack(g *gridgraph.Grid, start, end gridgraph.NodeID) []gridgraph.NodeID {
	var path []gridgraph.NodeID
	for cur := end; cur != start && cur != gridgraph.NoNode && len(path) < g.Len(); cur = g.Node(cur).Previous {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Run is a convenience for PerformAlgorithm on the start and end held by data.
func Run(a Algorithm, data *gridgraph.GridData) (*Result, error) {
	if data == nil || data.Grid == nil {
		return nil, ErrNilGrid
	}

	return a.PerformAlgorithm(data.Grid, data.Start, data.End)
}
