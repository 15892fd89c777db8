// SPDX-License-Identifier: MIT

package gridsearch

import (
	"fmt"
	"slices"
)

// Registry names.
const (
	NameBFS      = "bfs"
	NameDFS      = "dfs"
	NameDijkstra = "dijkstra"
	NameAStar    = "astar"
)

// BFS returns breadth-first search.
func BFS(opts ...Option) Algorithm { return newSearch(breadthFirst{}, opts) }

// DFS returns depth-first search.
func DFS(opts ...Option) Algorithm { return newSearch(depthFirst{}, opts) }

// Dijkstra returns uniform-cost search with unit steps.
func Dijkstra(opts ...Option) Algorithm {
	return newSearch(bestFirst{label: NameDijkstra}, opts)
}

// AStar returns A* with the Manhattan heuristic.
func AStar(opts ...Option) Algorithm {
	return newSearch(bestFirst{label: NameAStar, heuristic: true}, opts)
}

var registry = map[string]func(...Option) Algorithm{
	NameBFS:      BFS,
	NameDFS:      DFS,
	NameDijkstra: Dijkstra,
	NameAStar:    AStar,
}

// Lookup returns the algorithm registered under name.
func Lookup(name string, opts ...Option) (Algorithm, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownAlgorithm, name, Names())
	}

	return ctor(opts...), nil
}

// Names lists the registered algorithm names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
