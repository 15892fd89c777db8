// Package core provides a small generic graph G = (V, E) whose vertices and
// edges carry caller-supplied payloads.
//
// Identity:
//
//   - A *Vertex[V] is an opaque handle created by InsertVertex. Two vertices
//     with equal payloads are still distinct vertices.
//   - An *Edge[V,E] joins an origin and a destination vertex and carries a
//     payload of type E (typically a weight). Endpoints never change after
//     creation; the payload may be replaced with SetElement.
//
// Directed vs. undirected (WithDirected):
//
//   - Directed graphs record each edge once in the origin's outgoing table and
//     once in the destination's incoming table.
//   - Undirected graphs keep a single adjacency table. The same *Edge is stored
//     under both endpoints, so a change made through one endpoint is visible
//     from the other. Incoming queries on an undirected graph read the same
//     table as outgoing queries.
//
// Inserting a second edge between the same ordered pair replaces the first
// one in place; there are no parallel edges. Self-loops require WithLoops.
//
// Core methods:
//
//	InsertVertex(element V) *Vertex[V]                           // O(1) amortized
//	InsertEdge(u, v *Vertex[V], element E) (*Edge[V,E], error)  // O(1) amortized
//	GetEdge(u, v *Vertex[V]) *Edge[V,E]                          // O(1), nil if absent
//	Degree(v *Vertex[V], outgoing bool) int                      // O(1)
//	IncidentEdges(v *Vertex[V], outgoing bool) iter.Seq[*Edge]   // O(deg(v)) when drained
//	Vertices() iter.Seq[*Vertex[V]]                              // O(V)
//	VertexCount() int                                            // O(1)
//	EdgeCount() int                                              // O(V)
//	Edges() []*Edge[V,E]                                         // O(V+E), each edge once
//
// Determinism: vertices iterate in insertion order and incident edges in the
// order their neighbor was first linked.
//
// Concurrency: a Graph is not safe for concurrent mutation. Mutating the graph
// while ranging over IncidentEdges or Vertices is undefined.
//
// Errors:
//
//	ErrNilVertex       - a nil *Vertex was passed.
//	ErrVertexNotFound  - the vertex belongs to another graph (or none).
//	ErrLoopNotAllowed  - self-loop without WithLoops.
//	ErrNotEndpoint     - Edge.Opposite called with a vertex that is not an endpoint.
package core
