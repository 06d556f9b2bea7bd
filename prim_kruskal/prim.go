package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from a specified root vertex using a min-heap.
//
// Error Conditions:
//   - ErrInvalidGraph        : if graph is nil.
//   - ErrDisconnected        : if |V| == 0 or |V| > 1 but the graph is not fully connected.
//   - ErrEmptyRoot           : if the provided root string is empty.
//   - core.ErrVertexNotFound : if the root vertex does not exist in the graph.
//
// Steps:
//  1. Mark root as visited and push all its edges into the heap.
//  2. Pop the smallest edge by (Weight, From, To); skip it if both ends are visited.
//  3. Otherwise add it, mark the new endpoint and push that endpoint's edges.
//  4. Fewer than |V|-1 edges after the heap drains → ErrDisconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, int64, error) {
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, fmt.Errorf("%w: %q", core.ErrVertexNotFound, root)
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	n := len(vertices)
	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight int64

	pq := &edgePQ{}
	heap.Init(pq)

	grow := func(v string) error {
		visited[v] = true
		neighbors, err := graph.Neighbors(v)
		if err != nil {
			return err
		}
		for _, e := range neighbors {
			if !visited[e.Other(v)] {
				heap.Push(pq, e)
			}
		}

		return nil
	}

	if err := grow(root); err != nil {
		return nil, 0, err
	}
	for pq.Len() > 0 && len(mst) < n-1 {
		e := heap.Pop(pq).(core.Edge)
		var next string
		switch {
		case !visited[e.From]:
			next = e.From
		case !visited[e.To]:
			next = e.To
		default:
			continue
		}

		mst = append(mst, e)
		totalWeight += e.Weight
		if err := grow(next); err != nil {
			return nil, 0, err
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// edgePQ implements heap.Interface for a min-heap of core.Edge ordered by core.EdgeLess.
type edgePQ []core.Edge

func (pq edgePQ) Len() int           { return len(pq) }
func (pq edgePQ) Less(i, j int) bool { return core.EdgeLess(pq[i], pq[j]) }
func (pq edgePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a core.Edge to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(core.Edge)) }

// Pop removes and returns the last element of the underlying slice. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
