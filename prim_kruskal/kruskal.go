package prim_kruskal

import (
	"github.com/katalvlaran/campusnav/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph : if graph is nil.
//   - ErrDisconnected : if |V| == 0 or |V| > 1 but graph is not fully connected.
//
// Steps:
//  1. Retrieve sorted vertex IDs; if len(vertices)==0 → ErrDisconnected.
//     If len(vertices)==1 → trivial MST (empty, weight=0).
//  2. Collect edges via graph.Edges(), already ordered by (Weight, From, To).
//  3. Initialize DSU maps parent[] and rank[] for each vertex.
//  4. For each edge (u,v), if find(u) != find(v), union and include the edge.
//  5. Stop at |V|-1 edges; fewer after the loop → ErrDisconnected.
//
// Ties on weight are broken by the endpoint names, so the result is fully determined by the graph.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	edges := graph.Edges()
	dsu := newDisjointSet(vertices)

	var (
		mst         = make([]core.Edge, 0, len(vertices)-1)
		totalWeight int64
		numVerts    = len(vertices)
	)
	for _, e := range edges {
		if !dsu.union(e.From, e.To) {
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		if len(mst) == numVerts-1 {
			break
		}
	}

	if len(mst) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// disjointSet is a union-find forest keyed by vertex ID.
type disjointSet struct {
	parent map[string]string
	rank   map[string]int
}

func newDisjointSet(ids []string) *disjointSet {
	d := &disjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		d.parent[id] = id
	}

	return d
}

// find returns the root of u, halving the path on the way up.
func (d *disjointSet) find(u string) string {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v by rank and reports whether they were disjoint.
func (d *disjointSet) union(u, v string) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	switch {
	case d.rank[ru] < d.rank[rv]:
		d.parent[ru] = rv
	case d.rank[ru] > d.rank[rv]:
		d.parent[rv] = ru
	default:
		d.parent[rv] = ru
		d.rank[ru]++
	}

	return true
}
