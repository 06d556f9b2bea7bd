package core

// InducedSubgraph copies the vertices v of g with keep[v] set, and every edge
// whose endpoints are both kept. A nil keep keeps everything. g is only read.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	kept := func(id string) bool { return keep == nil || keep[id] }
	out := NewGraph()

	g.mu.RLock()
	defer g.mu.RUnlock()

	for id := range g.adjacency {
		if kept(id) {
			out.adjacency[id] = make(map[string]*Edge)
		}
	}
	for k, e := range g.edges {
		if kept(e.From) && kept(e.To) {
			cp := *e
			out.edges[k] = &cp
			out.link(&cp)
		}
	}

	return out
}
