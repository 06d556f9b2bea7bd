// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// undirected graphs whose edge weights are at least core.MinWeight.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source vertex
//     to every vertex in O((V + E) log V) time using a lazy min-heap.
//   - ShortestPath wraps Dijkstra for the common "from A to B" query and
//     rebuilds the route from the predecessor map.
//
// Determinism:
//
//   - When several routes share the minimum total weight, the one whose
//     vertex sequence is lexicographically smallest is chosen. Because every
//     weight is positive, all tight predecessors of a vertex are finalized
//     before it, so the choice is made exactly once per vertex and never
//     revisited.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilGraph, ErrVertexNotFound from input validation.
//   - ErrNoPath from ShortestPath when the target lies in another component.
//
// Thread safety:
//
//   - core.Graph guards its own maps; a traversal observes whatever the graph
//     holds while it runs. Synchronize externally when mutations and queries
//     must not interleave.
package dijkstra
