// SPDX-License-Identifier: MIT

package location_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/campusnav/location"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *location.Registry {
	t.Helper()
	r := location.NewRegistry()
	for _, l := range []location.Location{
		{Name: "Library", Type: "Academic", VisitTime: 30},
		{Name: "cafe", Type: "Dining", VisitTime: 15},
		{Name: "Gym", Type: "Sports", VisitTime: 45},
		{Name: "Lab", Type: "academic", VisitTime: 20},
	} {
		require.NoError(t, r.Add(l))
	}

	return r
}

func TestLocation_Validate(t *testing.T) {
	cases := []struct {
		name string
		loc  location.Location
		ok   bool
	}{
		{"valid", location.Location{Name: "Hall", Type: "Academic", VisitTime: 0}, true},
		{"empty name", location.Location{Name: "", Type: "Academic"}, false},
		{"blank name", location.Location{Name: "   ", Type: "Academic"}, false},
		{"empty type", location.Location{Name: "Hall", Type: ""}, false},
		{"negative visit", location.Location{Name: "Hall", Type: "Academic", VisitTime: -1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.loc.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, location.ErrInvalidLocation)
		})
	}

	err := location.Location{}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name must not be empty")
	assert.Contains(t, err.Error(), "type must not be empty")
}

func TestRegistry_AddDelete(t *testing.T) {
	r := seeded(t)
	assert.Len(t, r.List(), 4)

	err := r.Add(location.Location{Name: "Gym", Type: "Sports", VisitTime: 10})
	assert.ErrorIs(t, err, location.ErrLocationExists)

	err = r.Add(location.Location{Name: "Pool", Type: "Sports", VisitTime: -5})
	assert.ErrorIs(t, err, location.ErrInvalidLocation)
	assert.False(t, r.Has("Pool"))

	require.NoError(t, r.Delete("Gym"))
	assert.False(t, r.Has("Gym"))
	assert.ErrorIs(t, r.Delete("Gym"), location.ErrLocationNotFound)

	_, err = r.Get("Gym")
	assert.ErrorIs(t, err, location.ErrLocationNotFound)
}

func TestRegistry_ModifyIsAtomic(t *testing.T) {
	r := seeded(t)

	require.NoError(t, r.Modify("Gym", "Recreation", 60))
	got, err := r.Get("Gym")
	require.NoError(t, err)
	assert.Equal(t, location.Location{Name: "Gym", Type: "Recreation", VisitTime: 60}, got)

	// A bad visit time must leave the type untouched too.
	assert.ErrorIs(t, r.Modify("Gym", "Arena", -1), location.ErrInvalidLocation)
	got, _ = r.Get("Gym")
	assert.Equal(t, "Recreation", got.Type)

	assert.ErrorIs(t, r.Modify("Nowhere", "X", 1), location.ErrLocationNotFound)
}

func names(ls []location.Location) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.Name
	}

	return out
}

func TestRegistry_Find(t *testing.T) {
	r := seeded(t)

	// Type matches ignore case on both sides.
	assert.Equal(t, []string{"Lab", "Library"}, names(r.Find("ACADEMIC")))
	// Names match as given or lower-cased, never upper-cased.
	assert.Equal(t, []string{"cafe"}, names(r.Find("Cafe")))
	assert.Equal(t, []string{"Library"}, names(r.Find("Library")))
	assert.Empty(t, r.Find("library"))
	assert.Empty(t, r.Find("GYM"))
	assert.Empty(t, r.Find("   "))
	assert.Empty(t, r.Find("Observatory"))
}

func TestRegistry_ListAndOfType(t *testing.T) {
	r := seeded(t)
	assert.Equal(t, []string{"Gym", "Lab", "Library", "cafe"}, names(r.List()))
	assert.Equal(t, []string{"Library"}, names(r.OfType("Academic")))
	assert.Equal(t, []string{"Lab"}, names(r.OfType("academic")))
	assert.Empty(t, r.OfType("Unknown"))
}

func TestRegistry_ConcurrentAdds(t *testing.T) {
	r := location.NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = r.Add(location.Location{Name: fmt.Sprintf("L%02d", i), Type: "T", VisitTime: i})
			_ = r.List()
		}(i)
	}
	wg.Wait()
	assert.Len(t, r.List(), 50)
}
