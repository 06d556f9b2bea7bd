package dfs

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// frame is one pending visit on the explicit stack.
type frame struct {
	id     string
	parent string
	depth  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
	stack []frame
}

// DFS performs an iterative depth-first traversal of g from startID and
// returns the pre-order visit sequence with depth and parent links.
// Returns DFSResult or an error if aborted by the OnVisit hook.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &dfsWalker{
		graph: g,
		opts:  dopts,
		res: &DFSResult{
			Order:   make([]string, 0, n),
			Depth:   make(map[string]int, n),
			Parent:  make(map[string]string, n),
			Visited: make(map[string]bool, n),
		},
		stack: []frame{{id: startID}},
	}

	if err := w.run(); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// run pops frames until the stack is empty.
//
// A vertex may be pushed several times before it is visited; stale frames are
// skipped on pop. Neighbors are pushed in reverse lexicographic order so the
// smallest one is popped first, matching the recursive walk.
func (w *dfsWalker) run() error {
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.res.Visited[top.id] {
			continue
		}

		w.res.Visited[top.id] = true
		w.res.Depth[top.id] = top.depth
		if top.parent != "" {
			w.res.Parent[top.id] = top.parent
		}
		w.res.Order = append(w.res.Order, top.id)

		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(top.id); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %q: %w", top.id, err)
			}
		}

		nbrs, err := w.graph.NeighborIDs(top.id)
		if err != nil {
			return fmt.Errorf("dfs: NeighborIDs(%q): %w", top.id, err)
		}
		for i := len(nbrs) - 1; i >= 0; i-- {
			nid := nbrs[i]
			if w.res.Visited[nid] {
				continue
			}
			w.stack = append(w.stack, frame{id: nid, parent: top.id, depth: top.depth + 1})
		}
	}

	return nil
}
