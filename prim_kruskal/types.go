// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// ErrInvalidGraph indicates a nil graph or an unknown MST method name.
var ErrInvalidGraph = errors.New("prim_kruskal: invalid graph or method")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
// Prim cannot run without a valid root string.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. It applies when |V| == 0 or when
// |V| > 1 and some vertex is unreachable.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string - one of MethodPrim or MethodKruskal.
//	Root   string - start vertex ID for Prim; when empty, the smallest vertex ID is used.
//	               Ignored by Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal with an empty Root.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   "",
	}
}

// MSTResult is a spanning tree together with its total weight.
type MSTResult struct {
	// Edges of the tree, in the order the algorithm accepted them.
	Edges []core.Edge

	// TotalWeight is the sum of Edges' weights.
	TotalWeight int64
}

// Compute applies opts to DefaultOptions and runs the selected algorithm.
//
//	- MethodKruskal: Kruskal(graph).
//	- MethodPrim:    Prim(graph, Root), Root defaulting to the smallest vertex ID.
//	- Otherwise:     ErrInvalidGraph.
func Compute(graph *core.Graph, opts ...Option) (*MSTResult, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		edges []core.Edge
		total int64
		err   error
	)
	switch cfg.Method {
	case MethodKruskal:
		edges, total, err = Kruskal(graph)
	case MethodPrim:
		root := cfg.Root
		if root == "" && graph != nil {
			if vs := graph.Vertices(); len(vs) > 0 {
				root = vs[0]
			}
		}
		edges, total, err = Prim(graph, root)
	default:
		return nil, fmt.Errorf("%w: unknown method %q", ErrInvalidGraph, cfg.Method)
	}
	if err != nil {
		return nil, err
	}

	return &MSTResult{Edges: edges, TotalWeight: total}, nil
}
