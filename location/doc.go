// SPDX-License-Identifier: MIT

// Package location holds the registry of named campus locations.
//
// A Location is keyed by Name and carries a free-text Type plus a suggested
// VisitTime in minutes. The Registry owns the records and validates them on
// every write; it knows nothing about paths between locations. Callers that
// also maintain a graph (see package campus) are responsible for keeping the
// graph's vertex set equal to the registry's key set.
//
// Enumeration (List, Find, OfType) is always sorted by Name.
package location
