// SPDX-License-Identifier: MIT

package campus_test

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/prim_kruskal"
)

func abcd() []loc {
	return []loc{{"A", "T", 0}, {"B", "T", 0}, {"C", "T", 0}, {"D", "T", 0}}
}

func TestConnectivity(t *testing.T) {
	empty := newMap(t, nil, nil)
	c := empty.Connectivity()
	assert.True(t, c.Connected)
	assert.Empty(t, c.Components)
	assert.Empty(t, c.Bridges)

	m := newMap(t, abcd(), []path{{"A", "B", 1}, {"C", "D", 1}})
	c = m.Connectivity()
	assert.False(t, c.Connected)
	assert.Equal(t, [][]string{{"A", "B"}, {"C", "D"}}, c.Components)
	require.Len(t, c.Bridges, 1)
	assert.Equal(t, core.Edge{From: "A", To: "C", Weight: 100}, c.Bridges[0])

	// Applying the proposals connects the campus.
	for _, b := range c.Bridges {
		require.NoError(t, m.AddPath(b.From, b.To, b.Weight))
	}
	assert.True(t, m.Connectivity().Connected)
}

func TestConnectivity_ChainOfBridges(t *testing.T) {
	m := newMap(t,
		[]loc{{"E", "T", 0}, {"D", "T", 0}, {"C", "T", 0}, {"B", "T", 0}, {"A", "T", 0}},
		[]path{{"E", "B", 2}},
		campus.WithBridgeWeight(42),
	)

	c := m.Connectivity()
	assert.Equal(t, [][]string{{"A"}, {"B", "E"}, {"C"}, {"D"}}, c.Components)
	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 42},
		{From: "B", To: "C", Weight: 42},
		{From: "C", To: "D", Weight: 42},
	}, c.Bridges)
}

func TestHasPath(t *testing.T) {
	m := newMap(t, abcd(), []path{{"A", "B", 1}, {"B", "C", 1}})

	ok, err := m.HasPath("A", "C")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.HasPath("A", "D")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = m.HasPath("A", "Z")
	assert.ErrorIs(t, err, campus.ErrNotFound)
}

func TestShortestPath(t *testing.T) {
	m := newMap(t, abcd(), []path{{"A", "B", 5}, {"B", "C", 3}, {"A", "C", 10}})

	r, err := m.ShortestPath("A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, r.Vertices)
	assert.Equal(t, int64(8), r.Weight)

	r, err = m.ShortestPath("B", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, r.Vertices)

	_, err = m.ShortestPath("A", "D")
	assert.ErrorIs(t, err, campus.ErrNoPath)

	_, err = m.ShortestPath("Z", "A")
	assert.ErrorIs(t, err, campus.ErrNotFound)
}

// TestShortestPath_WeightIsSumOfSteps checks the reported weight against the
// individual paths on random campuses.
func TestShortestPath_WeightIsSumOfSteps(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 10; round++ {
		var locs []loc
		for i := 0; i < 6; i++ {
			locs = append(locs, loc{fmt.Sprintf("L%d", i), "T", 0})
		}
		var paths []path
		for i := 0; i < 6; i++ {
			for j := i + 1; j < 6; j++ {
				if rng.Intn(2) == 0 {
					paths = append(paths, path{locs[i].name, locs[j].name, 1 + rng.Int63n(9)})
				}
			}
		}
		m := newMap(t, locs, paths)

		for _, a := range locs {
			for _, b := range locs {
				r, err := m.ShortestPath(a.name, b.name)
				if err != nil {
					assert.ErrorIs(t, err, campus.ErrNoPath)
					continue
				}
				var sum int64
				for i := 0; i+1 < len(r.Vertices); i++ {
					e, err := m.Path(r.Vertices[i], r.Vertices[i+1])
					require.NoError(t, err)
					sum += e.Weight
				}
				assert.Equal(t, r.Weight, sum)
				assert.Equal(t, a.name, r.Vertices[0])
				assert.Equal(t, b.name, r.Vertices[len(r.Vertices)-1])
			}
		}
	}
}

func TestMinimumSpanningTree(t *testing.T) {
	_, err := newMap(t, abcd(), nil).MinimumSpanningTree()
	assert.ErrorIs(t, err, campus.ErrNoEdges)

	_, err = newMap(t, abcd(), []path{{"A", "B", 1}, {"C", "D", 1}}).MinimumSpanningTree()
	assert.ErrorIs(t, err, campus.ErrDisconnected)

	paths := []path{{"A", "B", 4}, {"B", "C", 1}, {"C", "D", 2}, {"A", "D", 3}, {"A", "C", 5}}
	for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		tree, err := newMap(t, abcd(), paths, campus.WithMSTMethod(method)).MinimumSpanningTree()
		require.NoError(t, err, method)
		assert.Equal(t, int64(6), tree.TotalWeight, method)
		assert.ElementsMatch(t, []core.Edge{
			{From: "B", To: "C", Weight: 1},
			{From: "C", To: "D", Weight: 2},
			{From: "A", To: "D", Weight: 3},
		}, tree.Edges, method)
	}
}

func TestMinimumSpanningTreeFrom(t *testing.T) {
	paths := []path{{"A", "B", 4}, {"B", "C", 1}, {"C", "D", 2}, {"A", "D", 3}, {"A", "C", 5}}
	m := newMap(t, abcd(), paths)

	tree, err := m.MinimumSpanningTreeFrom("A")
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: "A", To: "D", Weight: 3},
		{From: "C", To: "D", Weight: 2},
		{From: "B", To: "C", Weight: 1},
	}, tree.Edges)
	assert.Equal(t, int64(6), tree.TotalWeight)

	_, err = m.MinimumSpanningTreeFrom("Z")
	assert.ErrorIs(t, err, campus.ErrNotFound)

	_, err = newMap(t, abcd(), []path{{"A", "B", 1}}).MinimumSpanningTreeFrom("A")
	assert.ErrorIs(t, err, campus.ErrDisconnected)
}

func TestHopRoute(t *testing.T) {
	// The light route A-B-C-D is longer in hops than the heavy A-E-D.
	m := newMap(t,
		append(abcd(), loc{"E", "T", 0}, loc{"F", "T", 0}),
		[]path{{"A", "B", 1}, {"B", "C", 1}, {"C", "D", 1}, {"A", "E", 50}, {"E", "D", 50}},
	)

	stops, err := m.HopRoute("A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "E", "D"}, stops)

	r, err := m.ShortestPath("A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, r.Vertices)

	stops, err = m.HopRoute("C", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, stops)

	_, err = m.HopRoute("A", "F")
	assert.ErrorIs(t, err, campus.ErrNoPath)
	_, err = m.HopRoute("A", "Z")
	assert.ErrorIs(t, err, campus.ErrNotFound)
}

func TestNearby(t *testing.T) {
	m := newMap(t,
		append(abcd(), loc{"E", "T", 0}),
		[]path{{"C", "A", 9}, {"A", "B", 1}, {"B", "D", 1}, {"D", "E", 1}},
	)

	near, err := m.Nearby("A", 1)
	require.NoError(t, err)
	assert.Equal(t, []campus.Hop{{Name: "B", Hops: 1}, {Name: "C", Hops: 1}}, near)

	near, err = m.Nearby("A", 2)
	require.NoError(t, err)
	assert.Equal(t, []campus.Hop{{Name: "B", Hops: 1}, {Name: "C", Hops: 1}, {Name: "D", Hops: 2}}, near)

	near, err = newMap(t, abcd(), nil).Nearby("A", 3)
	require.NoError(t, err)
	assert.Empty(t, near)

	_, err = m.Nearby("A", 0)
	assert.ErrorIs(t, err, campus.ErrInvalidInput)
	_, err = m.Nearby("Z", 1)
	assert.ErrorIs(t, err, campus.ErrNotFound)
}

func TestEulerian(t *testing.T) {
	cases := []struct {
		name    string
		paths   []path
		exists  bool
		circuit bool
	}{
		{"triangle", []path{{"A", "B", 1}, {"B", "C", 1}, {"C", "A", 1}}, true, true},
		{"chain", []path{{"A", "B", 1}, {"B", "C", 1}, {"C", "D", 1}}, true, false},
		{"star", []path{{"A", "B", 1}, {"A", "C", 1}, {"A", "D", 1}}, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			locs := abcd()
			if tc.name == "triangle" {
				locs = locs[:3]
			}
			m := newMap(t, locs, tc.paths)
			res, err := m.Eulerian()
			require.NoError(t, err)
			assert.Equal(t, tc.exists, res.Exists)
			assert.Equal(t, tc.circuit, res.Circuit)

			walk, err := m.EulerianTrail()
			if !tc.exists {
				assert.ErrorIs(t, err, campus.ErrNoPath)
				return
			}
			require.NoError(t, err)
			assert.Len(t, walk, len(tc.paths)+1)
		})
	}

	_, err := newMap(t, abcd(), nil).Eulerian()
	assert.ErrorIs(t, err, campus.ErrNoEdges)
	_, err = newMap(t, abcd(), []path{{"A", "B", 1}}).Eulerian()
	assert.ErrorIs(t, err, campus.ErrDisconnected)
}

func TestTypeTour(t *testing.T) {
	locs := []loc{
		{"Library", "Academic", 30},
		{"Science", "Academic", 20},
		{"Arts", "Academic", 25},
		{"Cafe", "Dining", 15},
		{"Grill", "Dining", 10},
		{"Gym", "Sports", 45},
	}
	paths := []path{
		{"Library", "Cafe", 2},
		{"Cafe", "Science", 2},
		{"Library", "Science", 9},
		{"Arts", "Library", 4},
		{"Grill", "Gym", 3},
		{"Cafe", "Gym", 1},
	}
	m := newMap(t, locs, paths)

	tour, err := m.TypeTour("Academic")
	require.NoError(t, err)
	var order []string
	for _, s := range tour.Stops {
		order = append(order, s.Name)
	}
	// Starts at Arts, then Library, then Science via the direct Academic path.
	assert.Equal(t, []string{"Arts", "Library", "Science"}, order)
	assert.Equal(t, 75, tour.TotalVisitTime)

	// Cafe and Grill only connect through Gym, which is not Dining.
	_, err = m.TypeTour("Dining")
	assert.ErrorIs(t, err, campus.ErrDisconnected)

	// Case-sensitive filter.
	_, err = m.TypeTour("academic")
	assert.ErrorIs(t, err, campus.ErrEmptyResult)

	// A single match is trivially connected.
	tour, err = m.TypeTour("Sports")
	require.NoError(t, err)
	require.Len(t, tour.Stops, 1)
	assert.Equal(t, "Gym", tour.Stops[0].Name)
}

// TestConcurrentAccess runs mutations and analyses side by side.
func TestConcurrentAccess(t *testing.T) {
	m := newMap(t, nil, nil)
	for i := 0; i < 20; i++ {
		require.NoError(t, m.AddLocation(fmt.Sprintf("N%02d", i), "T", i))
	}

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(2)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 19; i++ {
				_ = m.AddPath(fmt.Sprintf("N%02d", i), fmt.Sprintf("N%02d", i+1), int64(1+w))
			}
		}(w)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				_ = m.Connectivity()
				_, _ = m.ShortestPath("N00", "N19")
				_, _ = m.TypeTour("T")
			}
		}()
	}
	wg.Wait()

	assert.True(t, m.Connectivity().Connected)
	assert.Len(t, m.Paths(), 19)
}
