package bfs

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// BFS walks g breadth-first from start, expanding neighbors in lexicographic
// order.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.bad != nil {
		return nil, o.bad
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	res, _, err := walk(g, start, o, "")

	return res, err
}

// walk is the shared loop behind BFS and Reachable. When target is non-empty
// the walk stops as soon as target is dequeued and found reports that.
//
// The queue is a slice with a moving head; every vertex is enqueued at most
// once, so it never grows past V.
func walk(g *core.Graph, start string, o Options, target string) (res *BFSResult, found bool, err error) {
	n := g.VertexCount()
	res = &BFSResult{
		Order:  make([]string, 0, n),
		Depth:  map[string]int{start: 0},
		Parent: make(map[string]string, n),
	}
	queue := make([]string, 1, n)
	queue[0] = start

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		depth := res.Depth[cur]
		res.Order = append(res.Order, cur)
		if cur == target {
			return res, true, nil
		}
		if o.MaxDepth > 0 && depth == o.MaxDepth {
			continue
		}

		next, nerr := g.NeighborIDs(cur)
		if nerr != nil {
			return res, false, fmt.Errorf("bfs: neighbors of %q: %w", cur, nerr)
		}
		for _, nb := range next {
			if res.Reached(nb) {
				continue
			}
			res.Depth[nb] = depth + 1
			res.Parent[nb] = cur
			queue = append(queue, nb)
		}
	}

	return res, false, nil
}

// Reachable reports whether a route of any length joins from and to.
// Both endpoints must exist (ErrStartVertexNotFound otherwise).
func Reachable(g *core.Graph, from, to string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	for _, id := range [...]string{from, to} {
		if !g.HasVertex(id) {
			return false, fmt.Errorf("%w: %q", ErrStartVertexNotFound, id)
		}
	}
	_, found, err := walk(g, from, DefaultOptions(), to)

	return found, err
}
