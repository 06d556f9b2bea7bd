// SPDX-License-Identifier: MIT

package campus

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/euler"
	"github.com/katalvlaran/campusnav/location"
	"github.com/katalvlaran/campusnav/prim_kruskal"
)

// Error kinds returned by Map operations.
var (
	// ErrNotFound: a named location or path does not exist.
	ErrNotFound = errors.New("campus: not found")

	// ErrAlreadyExists: a location with that name is already registered.
	ErrAlreadyExists = errors.New("campus: already exists")

	// ErrInvalidInput: a value failed validation (empty name or type,
	// negative visit time, weight outside [core.MinWeight, core.MaxWeight],
	// non-numeric text, self-loop, hop limit below 1).
	ErrInvalidInput = errors.New("campus: invalid input")

	// ErrNoPath: both locations exist but no route joins them.
	ErrNoPath = errors.New("campus: no path")

	// ErrNoEdges: the analysis needs at least one path.
	ErrNoEdges = errors.New("campus: no paths defined")

	// ErrDisconnected: the analysis needs a single connected component.
	ErrDisconnected = errors.New("campus: graph is disconnected")

	// ErrEmptyResult: a filter matched nothing.
	ErrEmptyResult = errors.New("campus: empty result")
)

// kinds maps lower-level sentinels onto the error kind they represent.
var kinds = []struct {
	kind   error
	causes []error
}{
	{ErrNotFound, []error{
		location.ErrLocationNotFound, core.ErrVertexNotFound, core.ErrEdgeNotFound,
		dijkstra.ErrVertexNotFound, bfs.ErrStartVertexNotFound,
	}},
	{ErrAlreadyExists, []error{location.ErrLocationExists}},
	{ErrInvalidInput, []error{
		location.ErrInvalidLocation, core.ErrEmptyVertexID, core.ErrBadWeight,
		core.ErrLoopNotAllowed, dijkstra.ErrEmptySource, prim_kruskal.ErrInvalidGraph,
		prim_kruskal.ErrEmptyRoot, bfs.ErrOptionViolation,
	}},
	{ErrNoPath, []error{dijkstra.ErrNoPath, euler.ErrNoTrail, bfs.ErrNotReached}},
	{ErrNoEdges, []error{euler.ErrNoEdges}},
	{ErrDisconnected, []error{euler.ErrDisconnected, prim_kruskal.ErrDisconnected}},
}

// classify wraps err with its error kind, leaving unknown errors untouched.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range kinds {
		if errors.Is(err, k.kind) {
			return err
		}
	}
	for _, k := range kinds {
		for _, c := range k.causes {
			if errors.Is(err, c) {
				return fmt.Errorf("%w: %w", k.kind, err)
			}
		}
	}

	return err
}
