package core

import (
	"cmp"
	"fmt"
	"slices"
)

// AddEdge inserts the undirected edge {a, b} with the given weight, or
// overwrites the weight if the edge already exists.
//
// Endpoints are never auto-created: an edge may only join registered vertices.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrBadWeight, ErrVertexNotFound.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, weight int64) error {
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}
	if a == b {
		return ErrLoopNotAllowed
	}
	if weight < MinWeight || weight > MaxWeight {
		return fmt.Errorf("%w: %d", ErrBadWeight, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range [...]string{a, b} {
		if _, ok := g.adjacency[id]; !ok {
			return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}

	k := keyOf(a, b)
	if e, exists := g.edges[k]; exists {
		e.Weight = weight

		return nil
	}

	e := &Edge{From: k.a, To: k.b, Weight: weight}
	g.edges[k] = e
	g.link(e)

	return nil
}

// UpdateEdge overwrites the weight of an existing edge {a, b}.
//
// Errors:
//   - ErrEdgeNotFound: if no such edge exists (including unknown endpoints).
//   - ErrBadWeight: if weight is outside [MinWeight, MaxWeight].
//
// Complexity: O(1).
func (g *Graph) UpdateEdge(a, b string, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[keyOf(a, b)]
	if !ok {
		return ErrEdgeNotFound
	}
	if weight < MinWeight || weight > MaxWeight {
		return fmt.Errorf("%w: %d", ErrBadWeight, weight)
	}
	e.Weight = weight

	return nil
}

// RemoveEdge deletes the edge {a, b} from the catalog and both adjacency buckets.
//
// Errors:
//   - ErrEdgeNotFound: if no such edge exists.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(a, b string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	k := keyOf(a, b)
	if _, ok := g.edges[k]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, k)
	delete(g.adjacency[k.a], k.b)
	delete(g.adjacency[k.b], k.a)

	return nil
}

// HasEdge reports whether the edge {a, b} exists. Order of a and b is irrelevant.
func (g *Graph) HasEdge(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.edges[keyOf(a, b)]

	return ok
}

// GetEdge returns a copy of the edge {a, b}, or ErrEdgeNotFound.
func (g *Graph) GetEdge(a, b string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[keyOf(a, b)]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// Edges returns copies of all edges sorted by (Weight, From, To) ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, *e)
	}
	g.mu.RUnlock()

	SortEdges(out)

	return out
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// SortEdges orders edges in place by (Weight, From, To) ascending.
func SortEdges(edges []Edge) {
	slices.SortFunc(edges, CompareEdges)
}

// CompareEdges is the canonical total order on edges: Weight, then From,
// then To.
func CompareEdges(x, y Edge) int {
	return cmp.Or(
		cmp.Compare(x.Weight, y.Weight),
		cmp.Compare(x.From, y.From),
		cmp.Compare(x.To, y.To),
	)
}

// EdgeLess reports whether x sorts before y under CompareEdges.
func EdgeLess(x, y Edge) bool { return CompareEdges(x, y) < 0 }
