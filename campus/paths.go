// SPDX-License-Identifier: MIT

package campus

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/campusnav/core"
)

// AddPath creates the path {a, b} or overwrites its weight.
//
// Errors, in order: ErrNotFound for an unknown endpoint, ErrInvalidInput for
// a == b or a weight outside [core.MinWeight, core.MaxWeight].
func (m *Map) AddPath(a, b string, weight int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireLocations(a, b); err != nil {
		return err
	}
	if err := m.graph.AddEdge(a, b, weight); err != nil {
		return classify(err)
	}
	m.log.Debug("path added", zap.String("a", a), zap.String("b", b), zap.Int64("weight", weight))

	return nil
}

// DeletePath removes the path {a, b}.
func (m *Map) DeletePath(a, b string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireLocations(a, b); err != nil {
		return err
	}
	if err := m.graph.RemoveEdge(a, b); err != nil {
		return classify(err)
	}
	m.log.Debug("path deleted", zap.String("a", a), zap.String("b", b))

	return nil
}

// ModifyPath changes the weight of an existing path. A missing path is
// reported before the weight is checked.
func (m *Map) ModifyPath(a, b string, weight int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireLocations(a, b); err != nil {
		return err
	}
	if err := m.graph.UpdateEdge(a, b, weight); err != nil {
		return classify(err)
	}
	m.log.Debug("path modified", zap.String("a", a), zap.String("b", b), zap.Int64("weight", weight))

	return nil
}

// Path returns the path {a, b}.
func (m *Map) Path(a, b string) (core.Edge, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.requireLocations(a, b); err != nil {
		return core.Edge{}, err
	}
	e, err := m.graph.GetEdge(a, b)

	return e, classify(err)
}

// Neighbors returns the names adjacent to name, sorted.
func (m *Map) Neighbors(name string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.requireLocations(name); err != nil {
		return nil, err
	}
	ids, err := m.graph.NeighborIDs(name)

	return ids, classify(err)
}

// Paths returns every path sorted by weight, then by endpoint names.
func (m *Map) Paths() []core.Edge {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.graph.Edges()
}
