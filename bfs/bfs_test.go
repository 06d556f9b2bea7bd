package bfs_test

import (
	"testing"

	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build registers every vertex mentioned in edges (plus extra) and links them with weight 1.
func build(t *testing.T, edges [][2]string, extra ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range extra {
		require.NoError(t, g.AddVertex(id))
	}
	for _, e := range edges {
		require.NoError(t, g.AddVertex(e[0]))
		require.NoError(t, g.AddVertex(e[1]))
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertex("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_CycleAndDepths covers a simple cycle and checks order and depths.
func TestBFS_CycleAndDepths(t *testing.T) {
	// A-B-C-D-A
	g := build(t, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}})

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := build(t, [][2]string{{"X", "Y"}, {"P", "Q"}})

	res, err := bfs.BFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, res.Order)
	assert.False(t, res.Reached("P"))

	_, err = res.PathTo("P")
	assert.ErrorIs(t, err, bfs.ErrNotReached)
}

// TestBFS_MaxDepth verifies that the walk stops expanding at the hop limit
// and that zero means unbounded.
func TestBFS_MaxDepth(t *testing.T) {
	g := build(t, [][2]string{{"A", "B"}, {"B", "C"}, {"A", "D"}, {"C", "E"}})

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, res.Order)
	assert.False(t, res.Reached("C"))

	res, err = bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 5)
	path, err := res.PathTo("E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "E"}, path)
}

// TestReachable covers positive, negative and invalid reachability queries.
func TestReachable(t *testing.T) {
	g := build(t, [][2]string{{"A", "B"}, {"B", "C"}}, "Z")

	ok, err := bfs.Reachable(g, "A", "C")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = bfs.Reachable(g, "A", "A")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = bfs.Reachable(g, "A", "Z")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = bfs.Reachable(g, "A", "nope")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.Reachable(g, "nope", "A")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

// TestComponents verifies discovery order, seed-first listing and Connected.
func TestComponents(t *testing.T) {
	assert.Empty(t, bfs.Components(core.NewGraph()))
	assert.True(t, bfs.Connected(core.NewGraph()))

	g := build(t, [][2]string{{"D", "C"}, {"B", "A"}, {"E", "A"}}, "F")
	comps := bfs.Components(g)
	assert.Equal(t, [][]string{{"A", "B", "E"}, {"C", "D"}, {"F"}}, comps)
	assert.False(t, bfs.Connected(g))

	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("D", "F", 1))
	assert.True(t, bfs.Connected(g))
}
