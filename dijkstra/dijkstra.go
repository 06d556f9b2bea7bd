// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Equal-distance candidates are compared by their full vertex sequence; the smaller one wins.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/campusnav/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (math.MaxInt64 if unreachable).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the chosen shortest path to v goes through u.
//     For the source and unreachable v, prev[v] == "".
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V) plus O(L) per equal-distance tie, L = route length.
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the minimum-weight route from source to target.
//
// If source == target the route is the single vertex with weight 0.
// When several routes tie on weight, the lexicographically smallest
// vertex sequence is returned.
func ShortestPath(g *core.Graph, source, target string) (*Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if target == "" {
		return nil, ErrEmptySource
	}
	if !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, target)
	}

	dist, prev, err := Dijkstra(g, Source(source), WithReturnPath())
	if err != nil {
		return nil, err
	}
	if dist[target] == math.MaxInt64 {
		return nil, fmt.Errorf("%w: %q to %q", ErrNoPath, source, target)
	}

	return &Path{Vertices: routeTo(prev, target), Weight: dist[target]}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph       // The input graph; read-only within Dijkstra.
	options Options           // Configuration options.
	dist    map[string]int64  // Maps vertex ID → current best distance from Source.
	prev    map[string]string // Maps vertex ID → predecessor on the chosen shortest path.
	visited map[string]bool   // Tracks if a vertex's distance is finalized.
	pq      nodePQ            // Min-heap of *nodeItem for lazy priority queue.
}

// init sets dist[v] = +∞ for every vertex and pushes Source with distance 0.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.MaxInt64
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unfinalized vertex and relaxes its edges
// until the heap is empty.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge incident to the finalized vertex u.
//
// A strictly shorter candidate always replaces the current best. An equal
// candidate replaces it only when its vertex sequence compares smaller; both
// u and the existing predecessor are already final, so their routes are stable.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var e core.Edge
	var v string
	var newDist int64
	for _, e = range neighbors {
		v = e.Other(u)
		if r.visited[v] {
			continue
		}

		newDist = r.dist[u] + e.Weight
		switch {
		case newDist < r.dist[v]:
			r.dist[v] = newDist
			r.prev[v] = u
			heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
		case newDist == r.dist[v] && r.prefer(u, v):
			// Same distance: the heap entry for v is already queued.
			r.prev[v] = u
		}
	}

	return nil
}

// prefer reports whether reaching v through u yields a lexicographically
// smaller route than reaching it through the current predecessor.
func (r *runner) prefer(u, v string) bool {
	cand := append(routeTo(r.prev, u), v)
	curr := append(routeTo(r.prev, r.prev[v]), v)

	return lessRoute(cand, curr)
}

// routeTo rebuilds the vertex sequence ending at target by following prev.
func routeTo(prev map[string]string, target string) []string {
	var rev []string
	for at := target; at != ""; at = prev[at] {
		rev = append(rev, at)
	}
	out := make([]string, len(rev), len(rev)+1)
	for i := range rev {
		out[i] = rev[len(rev)-1-i]
	}

	return out
}

// lessRoute compares two routes element by element; a proper prefix sorts first.
func lessRoute(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
// Outdated entries remain in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element of the underlying slice.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
