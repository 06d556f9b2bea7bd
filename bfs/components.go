package bfs

import "github.com/katalvlaran/campusnav/core"

// Components partitions the vertices of g into connected components.
//
// Seeds are scanned in core.Vertices() order (lexicographic); each component
// is listed seed-first and then in BFS visit order, so Components(g)[i][0] is
// both the first vertex discovered for that component and its smallest ID.
// Components themselves appear in discovery order.
//
// An empty graph yields no components.
//
// Time:   O(V + E log d).
// Memory: O(V) for visited flags and output.
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}
	seen := make(map[string]bool, g.VertexCount())
	var comps [][]string

	for _, seed := range g.Vertices() {
		if seen[seed] {
			continue
		}
		res, err := BFS(g, seed)
		if err != nil {
			// The seed came from Vertices(); only a concurrent removal can land here.
			continue
		}
		for _, id := range res.Order {
			seen[id] = true
		}
		comps = append(comps, res.Order)
	}

	return comps
}

// Connected reports whether g forms a single connected component.
// Empty and single-vertex graphs are connected.
func Connected(g *core.Graph) bool {
	return len(Components(g)) <= 1
}
