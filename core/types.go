// Package core defines the Graph and Edge types of the campus path network
// and the thread-safe primitives for building and querying it.
//
// A Graph guards all of its state with one sync.RWMutex: queries share it,
// mutations hold it exclusively, and no method calls another while locked.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrBadWeight       - edge weight outside [MinWeight, MaxWeight].
//	ErrLoopNotAllowed  - both endpoints of an edge are the same vertex.
package core

import (
	"errors"
	"math"
	"sync"
)

// Admissible edge weights. MaxWeight keeps any simple route, even one
// through millions of vertices, far below math.MaxInt64, which the
// algorithms use as "unreachable".
const (
	MinWeight int64 = 1
	MaxWeight int64 = math.MaxInt32
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates an edge weight outside [MinWeight, MaxWeight].
	ErrBadWeight = errors.New("core: edge weight out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an undirected, weighted connection between two vertices.
//
// Endpoints are stored canonically with From < To, so an Edge value is the
// same regardless of the order its endpoints were given in.
type Edge struct {
	// From is the lexicographically smaller endpoint.
	From string

	// To is the lexicographically larger endpoint.
	To string

	// Weight is the distance of the path, within [MinWeight, MaxWeight].
	Weight int64
}

// Other returns the endpoint of e opposite to id.
// If id is not an endpoint, the result is meaningless.
func (e Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// edgeKey is the canonical unordered pair used to index the edge catalog.
type edgeKey struct{ a, b string }

// keyOf returns the canonical key for the unordered pair {u, v}.
func keyOf(u, v string) edgeKey {
	if v < u {
		u, v = v, u
	}

	return edgeKey{a: u, b: v}
}

// Graph is the in-memory, undirected, weighted, simple graph.
//
// At most one edge exists between any unordered pair and self-loops are rejected.
// Location attributes (type, visit time) live in the location registry; the
// graph only knows vertex IDs.
type Graph struct {
	mu sync.RWMutex

	edges map[edgeKey]*Edge // canonical pair → Edge

	// adjacency has one bucket per vertex, so its key set is the vertex set.
	// adjacency[u][v] points at the same *Edge as adjacency[v][u].
	adjacency map[string]map[string]*Edge
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		edges:     make(map[edgeKey]*Edge),
		adjacency: make(map[string]map[string]*Edge),
	}
}
