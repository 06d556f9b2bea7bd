// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	- Source:     ID of the starting vertex (must be non-empty and present in the graph).
//	- ReturnPath: if true, return the predecessor map for path reconstruction.
//
// Errors (sentinel):
//
//	- ErrEmptySource    if the provided source ID is empty.
//	- ErrNilGraph       if the provided graph pointer is nil.
//	- ErrVertexNotFound if the source or target vertex does not exist in the graph.
//	- ErrNoPath         if the target is unreachable from the source.
package dijkstra

import (
	"errors"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a requested vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNoPath indicates that no path connects the two requested vertices.
	ErrNoPath = errors.New("dijkstra: no path between vertices")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source     - starting vertex ID (must be non-empty and present in the graph).
// ReturnPath - if true, return the predecessor map; otherwise prev map is nil.
type Options struct {
	Source     string // The ID of the source vertex
	ReturnPath bool   // Whether to return the predecessor map
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns an Options struct for the given source vertex ID
// with ReturnPath disabled.
func DefaultOptions(source string) Options {
	return Options{Source: source}
}

// Path is a single shortest route between two vertices.
type Path struct {
	// Vertices lists the route from source to target inclusive.
	Vertices []string

	// Weight is the sum of edge weights along Vertices.
	Weight int64
}
