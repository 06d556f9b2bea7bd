// SPDX-License-Identifier: MIT

package campus

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/location"
	"github.com/katalvlaran/campusnav/prim_kruskal"
)

// Map is a campus: registered locations and the paths between them.
//
// Mutations hold the write lock from validation to completion, so a failed
// call leaves no trace. Queries hold the read lock for their whole run.
type Map struct {
	mu    sync.RWMutex
	reg   *location.Registry
	graph *core.Graph
	opts  Options
	log   *zap.Logger
}

// New returns an empty Map.
//
// Errors: ErrInvalidInput for a bridge weight outside
// [core.MinWeight, core.MaxWeight] or an unknown spanning-tree method.
func New(opts ...Option) (*Map, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.BridgeWeight < core.MinWeight || o.BridgeWeight > core.MaxWeight {
		return nil, fmt.Errorf("%w: bridge weight %d outside %d..%d",
			ErrInvalidInput, o.BridgeWeight, core.MinWeight, core.MaxWeight)
	}
	if o.MSTMethod != prim_kruskal.MethodKruskal && o.MSTMethod != prim_kruskal.MethodPrim {
		return nil, fmt.Errorf("%w: unknown spanning-tree method %q", ErrInvalidInput, o.MSTMethod)
	}

	return &Map{
		reg:   location.NewRegistry(),
		graph: core.NewGraph(),
		opts:  o,
		log:   o.Logger,
	}, nil
}

// AddLocation registers a new location with no paths.
func (m *Map) AddLocation(name, typ string, visitTime int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	loc := location.Location{Name: name, Type: typ, VisitTime: visitTime}
	if err := m.reg.Add(loc); err != nil {
		return classify(err)
	}
	if err := m.graph.AddVertex(name); err != nil {
		// Validation already rejected empty names; keep both sides in step anyway.
		_ = m.reg.Delete(name)
		return classify(err)
	}
	m.log.Debug("location added", zap.String("name", name), zap.String("type", typ), zap.Int("visit_time", visitTime))

	return nil
}

// DeleteLocation removes a location together with every path touching it.
func (m *Map) DeleteLocation(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireLocations(name); err != nil {
		return err
	}
	degree, err := m.graph.Degree(name)
	if err != nil {
		return classify(err)
	}
	if err = m.reg.Delete(name); err != nil {
		return classify(err)
	}
	if err = m.graph.RemoveVertex(name); err != nil {
		return classify(err)
	}
	m.log.Debug("location deleted", zap.String("name", name), zap.Int("paths_removed", degree))

	return nil
}

// ModifyLocation replaces the type and visit time of an existing location.
func (m *Map) ModifyLocation(name, typ string, visitTime int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.reg.Modify(name, typ, visitTime); err != nil {
		return classify(err)
	}
	m.log.Debug("location modified", zap.String("name", name), zap.String("type", typ), zap.Int("visit_time", visitTime))

	return nil
}

// Location returns one location by name.
func (m *Map) Location(name string) (location.Location, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	loc, err := m.reg.Get(name)

	return loc, classify(err)
}

// Locations returns every location sorted by name.
func (m *Map) Locations() []location.Location {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.reg.List()
}

// FindLocations matches query case-insensitively against types and
// case-sensitively against names (as given or lower-cased). Sorted by name;
// may be empty.
func (m *Map) FindLocations(query string) []location.Location {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.reg.Find(query)
}

// requireLocations fails with ErrNotFound for the first unknown name.
// Callers hold m.mu.
func (m *Map) requireLocations(names ...string) error {
	for _, n := range names {
		if !m.reg.Has(n) {
			return classify(fmt.Errorf("%w: %q", location.ErrLocationNotFound, n))
		}
	}

	return nil
}
