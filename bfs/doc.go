// Package bfs provides breadth-first search over a core.Graph, returning hop
// distances, parent links, and visit order, plus the reachability and
// connected-component queries built on top of it.
//
// Edge weights are ignored: BFS answers "is there a route", never "how long".
//
// Determinism
//
//	core.NeighborIDs returns neighbors sorted lexicographically and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//	Components scans seeds in core.Vertices() order.
//
// Options
//
//   - WithMaxDepth: stop expanding after d hops (0 = no limit). Nearby-location
//     queries use it; BFSResult.PathTo turns the parent links into a
//     fewest-hop route.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
