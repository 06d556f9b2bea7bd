package euler

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/core"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed in.
	ErrNilGraph = errors.New("euler: graph is nil")

	// ErrNoEdges indicates the graph has no edges to traverse.
	ErrNoEdges = errors.New("euler: graph has no edges")

	// ErrDisconnected indicates that some vertex is unreachable from the rest.
	ErrDisconnected = errors.New("euler: graph is disconnected")

	// ErrNoTrail indicates more than two odd-degree vertices.
	ErrNoTrail = errors.New("euler: no Eulerian trail exists")
)

// Result reports the outcome of Check.
type Result struct {
	// Exists is true when the odd-degree count is 0 or 2.
	Exists bool

	// Circuit is true when every degree is even, so the trail can close on itself.
	Circuit bool

	// OddVertices lists odd-degree vertices in lexicographic order.
	OddVertices []string
}

// Check reports whether g admits an Eulerian path.
func Check(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.EdgeCount() == 0 {
		return nil, ErrNoEdges
	}
	if !bfs.Connected(g) {
		return nil, ErrDisconnected
	}

	odd := make([]string, 0)
	for _, id := range g.Vertices() {
		d, err := g.Degree(id)
		if err != nil {
			return nil, fmt.Errorf("euler: degree of %q: %w", id, err)
		}
		if d%2 == 1 {
			odd = append(odd, id)
		}
	}

	return &Result{
		Exists:      len(odd) == 0 || len(odd) == 2,
		Circuit:     len(odd) == 0,
		OddVertices: odd,
	}, nil
}

// Trail returns a sequence of vertices that walks every edge exactly once.
//
// The walk starts at the smaller odd-degree vertex, or at the smallest vertex
// when all degrees are even, and the traversal always tries the
// lexicographically smallest unused edge first. The returned slice has
// EdgeCount()+1 entries.
func Trail(g *core.Graph) ([]string, error) {
	res, err := Check(g)
	if err != nil {
		return nil, err
	}
	if !res.Exists {
		return nil, fmt.Errorf("%w: %d odd-degree vertices", ErrNoTrail, len(res.OddVertices))
	}

	start := g.Vertices()[0]
	if !res.Circuit {
		start = res.OddVertices[0]
	}

	return hierholzer(g.AdjacencyList(), start, g.EdgeCount()), nil
}

// hierholzer walks the simple undirected graph adj (sorted neighbor lists) from start.
//
// Each vertex keeps a cursor into its sorted neighbor list; used edges are
// recorded by unordered pair and skipped when the cursor reaches them.
func hierholzer(adj map[string][]string, start string, edgeCount int) []string {
	type pair struct{ a, b string }
	key := func(u, v string) pair {
		if v < u {
			u, v = v, u
		}

		return pair{u, v}
	}

	used := make(map[pair]bool, edgeCount)
	cursor := make(map[string]int, len(adj))
	walk := make([]string, 0, edgeCount+1)
	stack := []string{start}

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		nbrs := adj[u]
		for cursor[u] < len(nbrs) && used[key(u, nbrs[cursor[u]])] {
			cursor[u]++
		}
		if cursor[u] == len(nbrs) {
			// dead end: emit and backtrack
			walk = append(walk, u)
			stack = stack[:len(stack)-1]
			continue
		}

		v := nbrs[cursor[u]]
		used[key(u, v)] = true
		stack = append(stack, v)
	}

	for i, j := 0, len(walk)-1; i < j; i, j = i+1, j-1 {
		walk[i], walk[j] = walk[j], walk[i]
	}

	return walk
}
