// Package prim_kruskal computes a Minimum Spanning Tree (MST) on an undirected,
// weighted *core.Graph with either Kruskal's or Prim's algorithm.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) ([]core.Edge, int64, error)
//     Sort all edges, then merge components with a disjoint-set forest,
//     skipping edges whose endpoints are already connected.
//     Time O(E log E + α(V)·E), Space O(V + E).
//
//   - Prim(g *core.Graph, root string) ([]core.Edge, int64, error)
//     Grow a single tree from root, always taking the lightest edge that
//     reaches a new vertex. Time O(E log V), Space O(V + E).
//
//   - Compute(g, opts...) (*MSTResult, error)
//     Dispatch by MSTOptions.Method; Kruskal is the default.
//
// Determinism
//
//	Both algorithms order candidate edges by (Weight, From, To), the canonical
//	core.EdgeLess order. With distinct weights the tree is unique; with ties,
//	Kruskal always returns the same tree for the same graph, and Prim returns
//	the same tree for the same graph and root. The total weight never depends
//	on the algorithm.
//
// Error Conditions
//
//	- ErrInvalidGraph : nil graph, or unknown method passed to Compute.
//	- ErrEmptyRoot    : Prim called with root == "".
//	- ErrDisconnected : |V| == 0, or |V| > 1 and the graph is not connected.
//	- core.ErrVertexNotFound : Prim root not in the graph.
package prim_kruskal
