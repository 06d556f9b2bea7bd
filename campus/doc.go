// SPDX-License-Identifier: MIT

// Package campus is the single entry point for working with a campus map:
// a location registry plus the weighted path graph between locations.
//
// A Map owns both halves and keeps them consistent. Every location is a
// graph vertex; deleting a location deletes its paths. All operations
// return one of the error kinds declared in errors.go (match with
// errors.Is); the lower-level cause stays in the chain.
//
// Analyses never cache: each call recomputes from current state under a
// read lock, so a result always reflects one consistent snapshot.
//
// Ordering:
//
//   - Locations, find results and neighbor lists are sorted by name.
//   - Paths are sorted by weight, then by endpoint names.
//   - Components are discovered by scanning names in order; each component's
//     representative is its first (and smallest) member.
//   - Shortest paths resolve weight ties to the lexicographically smallest
//     sequence of stops.
//   - Tours start at the alphabetically first matching location and always
//     step to the alphabetically smallest unvisited neighbor.
package campus
