// SPDX-License-Identifier: MIT

package location

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry is a thread-safe set of Locations keyed by name.
type Registry struct {
	mu    sync.RWMutex
	items map[string]Location
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]Location)}
}

// Add inserts loc. It fails with ErrInvalidLocation before checking for
// duplicates, and with ErrLocationExists if the name is taken.
func (r *Registry) Add(loc Location) error {
	if err := loc.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[loc.Name]; ok {
		return fmt.Errorf("%w: %q", ErrLocationExists, loc.Name)
	}
	r.items[loc.Name] = loc

	return nil
}

// Delete removes the named location.
func (r *Registry) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[name]; !ok {
		return fmt.Errorf("%w: %q", ErrLocationNotFound, name)
	}
	delete(r.items, name)

	return nil
}

// Modify replaces both the type and the visit time of an existing location.
// Nothing changes unless the updated record validates.
func (r *Registry) Modify(name, newType string, newVisitTime int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[name]; !ok {
		return fmt.Errorf("%w: %q", ErrLocationNotFound, name)
	}
	next := Location{Name: name, Type: newType, VisitTime: newVisitTime}
	if err := next.Validate(); err != nil {
		return err
	}
	r.items[name] = next

	return nil
}

// Get returns the named location.
func (r *Registry) Get(name string) (Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	loc, ok := r.items[name]
	if !ok {
		return Location{}, fmt.Errorf("%w: %q", ErrLocationNotFound, name)
	}

	return loc, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[name]

	return ok
}

// List returns every location sorted by name.
func (r *Registry) List() []Location {
	return r.filter(func(Location) bool { return true })
}

// Find matches query against each location. Types compare case-insensitively.
// Names compare case-sensitively, against the query as given and against its
// lower-cased form, so "Cafe" finds a location stored as "cafe" but "cafe"
// does not find "Cafe". A blank query matches nothing.
func (r *Registry) Find(query string) []Location {
	if strings.TrimSpace(query) == "" {
		return []Location{}
	}
	q := strings.ToLower(query)

	return r.filter(func(l Location) bool {
		return q == strings.ToLower(l.Type) || query == l.Name || q == l.Name
	})
}

// OfType returns the locations whose type equals t exactly (case-sensitive).
func (r *Registry) OfType(t string) []Location {
	return r.filter(func(l Location) bool { return l.Type == t })
}

func (r *Registry) filter(keep func(Location) bool) []Location {
	r.mu.RLock()
	out := make([]Location, 0, len(r.items))
	for _, l := range r.items {
		if keep(l) {
			out = append(out, l)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}
