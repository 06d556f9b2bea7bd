// SPDX-License-Identifier: MIT

package campus

import (
	"cmp"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dfs"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/euler"
	"github.com/katalvlaran/campusnav/location"
	"github.com/katalvlaran/campusnav/prim_kruskal"
)

// Connectivity describes how the campus splits into islands.
type Connectivity struct {
	// Connected is true for zero or one component.
	Connected bool

	// Components in discovery order; each lists its representative first.
	Components [][]string

	// Bridges proposes one path between the representatives of each pair of
	// consecutive components. len(Bridges) == len(Components)-1 when disconnected.
	Bridges []core.Edge
}

// Route is a shortest path between two locations.
type Route = dijkstra.Path

// SpanningTree is a minimum spanning tree over all locations.
type SpanningTree = prim_kruskal.MSTResult

// EulerReport says whether every path can be walked exactly once.
type EulerReport = euler.Result

// Hop is a location together with the fewest paths needed to reach it.
type Hop struct {
	Name string
	Hops int
}

// Tour is a depth-first walk over the locations of one type.
type Tour struct {
	// Type is the filter the tour was built for.
	Type string

	// Stops in visiting order; every matching location appears exactly once.
	Stops []location.Location

	// TotalVisitTime sums VisitTime over Stops.
	TotalVisitTime int
}

// Connectivity computes connected components and, when there is more than
// one, proposes bridging paths weighted by the configured bridge weight.
func (m *Map) Connectivity() Connectivity {
	m.mu.RLock()
	defer m.mu.RUnlock()

	comps := bfs.Components(m.graph)
	out := Connectivity{Connected: len(comps) <= 1, Components: comps}
	for i := 0; i+1 < len(comps); i++ {
		out.Bridges = append(out.Bridges, core.Edge{
			From:   comps[i][0],
			To:     comps[i+1][0],
			Weight: m.opts.BridgeWeight,
		})
	}
	m.log.Debug("connectivity computed", zap.Int("components", len(comps)))

	return out
}

// HasPath reports whether b is reachable from a.
func (m *Map) HasPath(a, b string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.requireLocations(a, b); err != nil {
		return false, err
	}
	ok, err := bfs.Reachable(m.graph, a, b)

	return ok, classify(err)
}

// ShortestPath returns the lightest route from a to b.
//
// Errors: ErrNotFound for an unknown endpoint, ErrNoPath when b is in a
// different component.
func (m *Map) ShortestPath(a, b string) (*Route, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.requireLocations(a, b); err != nil {
		return nil, err
	}
	p, err := dijkstra.ShortestPath(m.graph, a, b)
	if err != nil {
		return nil, classify(err)
	}
	m.log.Debug("shortest path computed",
		zap.String("from", a), zap.String("to", b),
		zap.Int("stops", len(p.Vertices)), zap.Int64("weight", p.Weight))

	return p, nil
}

// HopRoute returns a route from a to b that uses the fewest paths,
// ignoring weights. Ties go to the alphabetically earlier stop at each step.
//
// Errors: ErrNotFound for an unknown endpoint, ErrNoPath when b is in a
// different component.
func (m *Map) HopRoute(a, b string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.requireLocations(a, b); err != nil {
		return nil, err
	}
	res, err := bfs.BFS(m.graph, a)
	if err != nil {
		return nil, classify(err)
	}
	stops, err := res.PathTo(b)
	if err != nil {
		return nil, classify(err)
	}

	return stops, nil
}

// Nearby lists the locations at most hops paths away from name, closest
// first and alphabetical within the same distance. name itself is excluded.
//
// Errors: ErrNotFound for an unknown location, ErrInvalidInput for hops < 1.
func (m *Map) Nearby(name string, hops int) ([]Hop, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.requireLocations(name); err != nil {
		return nil, err
	}
	if hops < 1 {
		return nil, fmt.Errorf("%w: hop limit %d below 1", ErrInvalidInput, hops)
	}
	res, err := bfs.BFS(m.graph, name, bfs.WithMaxDepth(hops))
	if err != nil {
		return nil, classify(err)
	}

	out := make([]Hop, 0, len(res.Order)-1)
	for _, id := range res.Order[1:] {
		out = append(out, Hop{Name: id, Hops: res.Depth[id]})
	}
	slices.SortFunc(out, func(x, y Hop) int {
		return cmp.Or(cmp.Compare(x.Hops, y.Hops), cmp.Compare(x.Name, y.Name))
	})

	return out, nil
}

// MinimumSpanningTree returns a minimum spanning tree over every location.
//
// Errors: ErrNoEdges when no path exists, ErrDisconnected otherwise if the
// campus is split.
func (m *Map) MinimumSpanningTree() (*SpanningTree, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.spanningTree(prim_kruskal.WithMethod(m.opts.MSTMethod))
}

// MinimumSpanningTreeFrom grows the tree with Prim's algorithm from root,
// so Edges lists the paths in the order they join the tree around root.
// The total weight equals MinimumSpanningTree's.
//
// Errors: ErrNotFound for an unknown root, then as MinimumSpanningTree.
func (m *Map) MinimumSpanningTreeFrom(root string) (*SpanningTree, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.requireLocations(root); err != nil {
		return nil, err
	}

	return m.spanningTree(prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(root))
}

// spanningTree checks the preconditions and runs prim_kruskal. Callers hold
// the read lock.
func (m *Map) spanningTree(opts ...prim_kruskal.Option) (*SpanningTree, error) {
	if m.graph.EdgeCount() == 0 {
		return nil, ErrNoEdges
	}
	if !bfs.Connected(m.graph) {
		return nil, ErrDisconnected
	}
	res, err := prim_kruskal.Compute(m.graph, opts...)
	if err != nil {
		return nil, classify(err)
	}
	m.log.Debug("spanning tree computed",
		zap.Int("edges", len(res.Edges)), zap.Int64("weight", res.TotalWeight))

	return res, nil
}

// Eulerian reports whether some walk uses every path exactly once.
// Preconditions match MinimumSpanningTree.
func (m *Map) Eulerian() (*EulerReport, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res, err := euler.Check(m.graph)
	if err != nil {
		return nil, classify(err)
	}

	return res, nil
}

// EulerianTrail returns one walk that uses every path exactly once.
// It fails with ErrNoPath when more than two locations have odd degree.
func (m *Map) EulerianTrail() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	walk, err := euler.Trail(m.graph)
	if err != nil {
		return nil, classify(err)
	}

	return walk, nil
}

// TypeTour walks every location whose type equals typ exactly.
//
// Only paths with both ends of that type are used. The walk is a depth-first
// pre-order from the alphabetically first match, trying neighbors in
// alphabetical order.
//
// Errors: ErrEmptyResult when nothing matches, ErrDisconnected when the
// matching locations do not form one connected group.
func (m *Map) TypeTour(typ string) (*Tour, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matches := m.reg.OfType(typ)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no locations of type %q", ErrEmptyResult, typ)
	}

	byName := make(map[string]location.Location, len(matches))
	keep := make(map[string]bool, len(matches))
	for _, l := range matches {
		byName[l.Name] = l
		keep[l.Name] = true
	}
	sub := core.InducedSubgraph(m.graph, keep)
	if !bfs.Connected(sub) {
		return nil, fmt.Errorf("%w: locations of type %q", ErrDisconnected, typ)
	}

	tour := &Tour{Type: typ, Stops: make([]location.Location, 0, len(matches))}
	collect := func(id string) error {
		l := byName[id]
		tour.Stops = append(tour.Stops, l)
		tour.TotalVisitTime += l.VisitTime

		return nil
	}
	if _, err := dfs.DFS(sub, matches[0].Name, dfs.WithOnVisit(collect)); err != nil {
		return nil, classify(err)
	}
	m.log.Debug("type tour computed", zap.String("type", typ), zap.Int("stops", len(tour.Stops)))

	return tour, nil
}
