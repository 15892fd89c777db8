// Package converters provides two-way adapters between core.Graph and
// gonum's graph/simple weighted graphs.
//
// ToGonum assigns dense int64 IDs to vertices in insertion order, so vertex i
// of g becomes gonum node i. Self-loops are dropped because gonum simple
// graphs reject them; a loop never lies on a shortest path.
//
// FromGonum walks a gonum weighted graph in ascending node-ID order and
// rebuilds it as a core.Graph[int64, float64].
package converters
