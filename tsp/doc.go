// Package tsp builds an approximate round trip over a set of required stops.
//
// The pipeline runs one stage after the other over a read-only core.Oracle:
//
//   - route      – stops straightened into shortest sub-paths (package dijkstra).
//   - mst        – spanning tree of the distinct stops (package prim_kruskal).
//   - odd-degree – OddDegree lists the tree vertices with odd degree.
//   - matching   – GreedyMatch pairs them up, first remaining vertex with its
//     nearest remaining partner.
//   - multigraph – AssembleMultigraph merges tree and matching under a degree
//     cap of 2, then pairs leftover deficient nodes directly.
//   - circuit    – HamiltonianPath walks the multigraph; when stuck it jumps to
//     the next unvisited stop in list order. ClosedTour closes the walk.
//
// Two named heuristics shape the output and are kept on purpose, since
// changing them changes every tour on existing data:
//
//   - greedy matching instead of a minimum-weight perfect matching;
//   - the "next unvisited in list order" jump of the circuit walk.
//
// The result is therefore not a 1.5-approximation in general. Exact (Held–Karp,
// n ≤ MaxExactNodes) gives the optimum for comparison, and WithTwoOpt adds a
// first-improvement 2-opt pass whose output is kept apart in Result.Improved.
//
// Complexity:
//
//   - Route:   O(k·V²) for k stops over a V-node oracle.
//   - MST:     O(n²) for n distinct stops.
//   - Others:  O(n²) or better; Exact is O(n²·2ⁿ).
//
// Errors: a failing stage returns a *StageError naming the stage. Its cause is
// one of ErrEmptyResult, ErrUnmatchedVertex, the dijkstra sentinels (notably
// dijkstra.ErrUnreachable) or the prim_kruskal sentinels. Multigraph degree
// violations are reported in Multigraph.Violations and never abort the run.
package tsp
