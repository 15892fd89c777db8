package dijkstra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/pathfinder/core"
)

// PathTo rebuilds the vertex sequence source..target from a predecessor map
// returned with WithReturnPath. A target equal to source yields [source].
// ErrNoPath is returned if the chain breaks before reaching source.
// Complexity: O(len(path)).
func PathTo[V any](prev map[*core.Vertex[V]]*core.Vertex[V], source, target *core.Vertex[V]) ([]*core.Vertex[V], error) {
	if source == nil || target == nil {
		return nil, ErrNoPath
	}
	path := []*core.Vertex[V]{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok || p == nil {
			return nil, fmt.Errorf("%w: %v", ErrNoPath, target.Element())
		}
		// A chain longer than the map means a cycle; the map is corrupt.
		if len(path) > len(prev)+1 {
			return nil, fmt.Errorf("%w: cycle in predecessor map", ErrNoPath)
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path, nil
}
