package bfs

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start (or target) ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an option carries an invalid value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a vertex the walk never saw.
	ErrNotReached = errors.New("bfs: destination not reached")
)

// Option mutates Options before a walk starts.
type Option func(*Options)

// Options tunes a single BFS call.
type Options struct {
	// MaxDepth bounds the walk to that many hops; 0 means unbounded.
	MaxDepth int

	bad error
}

// DefaultOptions returns an unbounded walk.
func DefaultOptions() Options {
	return Options{}
}

// WithMaxDepth limits the walk to d hops from the start. Negative d is
// rejected with ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.bad = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// BFSResult is what one walk saw.
type BFSResult struct {
	// Order lists vertices in dequeue order.
	Order []string

	// Depth is the hop count from the start for every reached vertex.
	Depth map[string]int

	// Parent maps each reached vertex except the start to the vertex that
	// discovered it.
	Parent map[string]string
}

// Reached reports whether id was visited.
func (r *BFSResult) Reached(id string) bool {
	_, ok := r.Depth[id]

	return ok
}

// PathTo returns a fewest-hop route from the start to dest.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %q", ErrNotReached, dest)
	}

	path := make([]string, 0, r.Depth[dest]+1)
	for cur, ok := dest, true; ok; cur, ok = r.Parent[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
