// Package dfs implements an iterative depth-first traversal on a core.Graph.
//
// What:
//
//   - DFS explores as far as possible along each branch before backtracking
//     and records vertices in pre-order (the order they are first visited).
//   - An explicit stack replaces recursion, so deep chains never grow the
//     goroutine stack.
//   - Neighbors are explored in lexicographic order; the resulting Order is
//     exactly what a recursive pre-order walk over sorted neighbor lists yields.
//   - An OnVisit hook sees every vertex as it is first visited; the campus
//     type tour accumulates its stops through it.
//
// Complexity:
//
//   - Time O(V + E log d), Memory O(V + E) for the stack.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - hook errors             propagated from OnVisit
package dfs
