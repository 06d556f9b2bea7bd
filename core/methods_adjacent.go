package core

import (
	"fmt"
	"slices"
	"strings"
)

// Neighbors returns copies of the edges touching id, ordered by the ID of
// the opposite endpoint.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	bucket, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]Edge, 0, len(bucket))
	for _, e := range bucket {
		out = append(out, *e)
	}
	g.mu.RUnlock()

	slices.SortFunc(out, func(x, y Edge) int { return strings.Compare(x.Other(id), y.Other(id)) })

	return out, nil
}

// NeighborIDs returns the IDs one edge away from id, ascending.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	bucket, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	ids := sortedKeys(bucket)
	g.mu.RUnlock()

	return ids, nil
}

// AdjacencyList snapshots the whole neighborhood structure: vertex ID to its
// ascending neighbor IDs. Isolated vertices map to an empty, non-nil slice.
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.adjacency))
	for id, bucket := range g.adjacency {
		out[id] = sortedKeys(bucket)
	}

	return out
}

func sortedKeys(bucket map[string]*Edge) []string {
	ids := make([]string, 0, len(bucket))
	for nb := range bucket {
		ids = append(ids, nb)
	}
	slices.Sort(ids)

	return ids
}

// link records e in both endpoint buckets. Caller holds the write lock and
// both buckets exist.
func (g *Graph) link(e *Edge) {
	g.adjacency[e.From][e.To] = e
	g.adjacency[e.To][e.From] = e
}
