// Package euler answers whether an undirected graph admits an Eulerian path
// (a walk using every edge exactly once) and can construct one.
//
//   - Check counts odd-degree vertices: a trail exists iff the count is 0
//     (closed circuit) or 2 (open trail between the two odd vertices).
//   - Trail builds the walk with Hierholzer's algorithm in O(E log d).
//
// Both require at least one edge (ErrNoEdges) and a single connected
// component covering every vertex (ErrDisconnected). An isolated vertex
// therefore makes the graph disconnected even though it carries no edges.
package euler
