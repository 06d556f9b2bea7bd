package dfs

import "errors"

var (
	ErrGraphNil            = errors.New("dfs: graph is nil")
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option adjusts DFSOptions.
type Option func(*DFSOptions)

// DFSOptions are the knobs of a single walk. Nil hooks are skipped.
type DFSOptions struct {
	// OnVisit sees each vertex the moment it enters Order. An error stops
	// the walk.
	OnVisit func(id string) error
}

// DefaultOptions is a full, unhooked walk.
func DefaultOptions() DFSOptions {
	return DFSOptions{}
}

func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// DFSResult is the pre-order walk and the tree it induced.
type DFSResult struct {
	Order   []string          // first-visit order
	Depth   map[string]int    // tree depth; the start is 0
	Parent  map[string]string // tree parent; the start has none
	Visited map[string]bool
}
