package core

import (
	"fmt"
	"slices"
)

// AddVertex registers id with an empty neighborhood. Adding an existing ID
// is a no-op.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]*Edge)
	}

	return nil
}

// HasVertex reports whether id is registered. The empty ID never is.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// RemoveVertex drops id together with every edge touching it.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(deg(id)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	for nb := range bucket {
		delete(g.edges, keyOf(id, nb))
		delete(g.adjacency[nb], id)
	}
	delete(g.adjacency, id)

	return nil
}

// Vertices lists every vertex ID in ascending order. All traversals in this
// module seed from this order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	slices.Sort(ids)

	return ids
}

// VertexCount returns the number of registered vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Degree returns how many edges touch id.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return len(bucket), nil
}
