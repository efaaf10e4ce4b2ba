// Package prim_kruskal is the MST Builder of the tour pipeline: it spans a set of
// required stops over a dense core.Oracle with Prim's or Kruskal's algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given a node set V and pairwise weights, an MST is a set T of |V|−1 edges
//     connecting every node of V with the least total weight.
//
//   - Why it matters here:
//     The tree is the skeleton of the approximate tour. Its odd-degree nodes are
//     matched, the matching is merged back into the tree, and the merged degree-2
//     multigraph is walked into a Hamiltonian circuit (see package tsp).
//
// Algorithms Provided
//
//   - Prim(nodes []int, o core.Oracle) (*Tree, error)
//
//   - Strategy: start at nodes[0]; keep for every outside vertex the cheapest
//     edge connecting it to the tree in a yagh.IntMap keyed by list position;
//     repeatedly pop the globally cheapest vertex, commit its edge, relax the rest.
//
//   - Complexity: O(V²) relaxations plus O(V log V) frontier work. The oracle is
//     dense and node counts are small, so no adjacency list is materialized.
//
//   - Determinism: equal costs pop in list order; relaxation uses a strict "<".
//
//   - Kruskal(nodes []int, o core.Oracle) (*Tree, error)
//
//   - Strategy: enumerate every finite pair, stable-sort by weight, merge with
//     union-find (path compression, union by rank).
//
//   - Complexity: O(V² log V) time, O(V²) memory for the pair list.
//
// Result shape
//
//	Tree.Vertices keeps the input order of the node set. Every edge is recorded on
//	both endpoints (once per vertex, deduplicated by canonical core.EdgeKey), so a
//	vertex's adjacency length is its tree degree. Tree.Edges returns the V−1
//	canonical edges; Tree.Weight is their sum.
//
// Error Conditions
//
//   - ErrNilOracle      : nil oracle.
//   - ErrEmptyNodeSet   : no nodes to span.
//   - ErrNodeOutOfRange : an id outside [0, o.Len()).
//   - ErrDuplicateNode  : the same id twice.
//   - ErrDisconnected   : some node is at core.Inf from every other tree node.
//   - ErrUnknownMethod  : Compute got a Method other than MethodPrim / MethodKruskal.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
