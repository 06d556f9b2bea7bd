// Package core provides the thread-safe, in-memory path graph that backs the
// campus navigator: an undirected, weighted, simple graph keyed by location name.
//
// The Graph G = (V,E) obeys a small, strict set of rules:
//
//   - Undirected: the edge {a,b} is the same edge as {b,a}; it is stored once
//     with canonical endpoints From < To and linked from both adjacency buckets.
//   - Weighted: every edge carries an int64 distance in [MinWeight, MaxWeight].
//   - Simple: at most one edge per unordered pair (AddEdge on an existing pair
//     overwrites its weight) and no self-loops.
//   - Closed over vertices: AddEdge never auto-creates endpoints; RemoveVertex
//     cascades to every incident edge.
//   - Deterministic iteration: Vertices(), NeighborIDs() are lexicographic,
//     Edges() is ordered by (Weight, From, To).
//   - One sync.RWMutex per Graph; every method is safe for concurrent use.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1), idempotent
//	HasVertex(id string) bool           // O(1)
//	RemoveVertex(id string) error       // O(deg(v)), cascades edges
//
//	// Edge lifecycle
//	AddEdge(a, b string, w int64) error     // O(1), upsert
//	UpdateEdge(a, b string, w int64) error  // O(1), edge must exist
//	RemoveEdge(a, b string) error           // O(1)
//	HasEdge(a, b string) bool               // O(1)
//	GetEdge(a, b string) (Edge, error)      // O(1)
//
//	// Query
//	Neighbors(id string) ([]Edge, error)      // O(d·log d)
//	NeighborIDs(id string) ([]string, error)  // O(d·log d)
//	AdjacencyList() map[string][]string       // O(V+E)
//	Vertices() []string                       // O(V·log V)
//	Edges() []Edge                            // O(E·log E)
//	Degree(id string) (int, error)            // O(1)
//
//	// Views
//	InducedSubgraph(g, keep) *Graph           // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID  - zero-length vertex ID
//	ErrVertexNotFound - missing vertex
//	ErrEdgeNotFound   - missing edge
//	ErrBadWeight      - weight outside [MinWeight, MaxWeight]
//	ErrLoopNotAllowed - a == b
package core
