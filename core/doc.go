// Package core defines the data model shared by every stage of the tour
// pipeline: node indices, undirected-by-key Edges, MST Vertices, closed Tours
// and the read-only distance Oracle the algorithms query.
//
// Nodes live in an arena owned by the distance table and are referred to by
// their stable index (0..n-1). Edges are plain (from, to, weight) records, so
// the adjacency of a Vertex never points back at another Vertex object.
//
// Conventions:
//
//   - Inf (math.MaxInt64) is the "unreachable" distance. Arithmetic on
//     distances goes through AddWeight, which saturates at Inf.
//   - Two edges (u,v,w) and (v,u,w) are the same undirected edge. Key returns
//     the canonical EdgeKey with U <= V. Arena indices follow the sorted order
//     of node names, so ordering indices is the same as ordering names.
//   - Slices returned by this package are fresh copies unless stated otherwise.
//
// Example:
//
//	e := core.NewEdge(3, 1, 7)
//	e.Key()      // EdgeKey{U: 1, V: 3}
//	e.Reverse()  // Edge{From: 1, To: 3, Weight: 7}
package core
