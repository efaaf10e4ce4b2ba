// Package dijkstra is the Shortest-Path Engine of the tour pipeline: classic
// single-source Dijkstra over a core.Oracle, plus the route "straightening"
// step that replaces each pair of consecutive required stops with their
// shortest sub-path.
//
// Overview:
//
//   - Distances computes the finalized distance and predecessor of every node
//     reachable from a source. Every node of the oracle is a potential
//     neighbour; an entry equal to core.Inf (or ≥ InfEdgeThreshold) is not an
//     edge.
//   - ShortestPath reconstructs one least-cost start→end path, inclusive of
//     both endpoints.
//   - OptimizeRoute concatenates the shortest sub-paths of a stop sequence,
//     dropping the duplicated junction node between segments.
//
// Frontier and ties:
//
//   - The frontier is a yagh.IntMap keyed by arena index with decrease-key
//     updates. Relaxation uses a strict "<", so the first shortest distance
//     discovered for a node is kept.
//   - Equal tentative distances are popped lowest arena index first (yagh's
//     ordering), which makes every result reproducible.
//
// Complexity:
//
//   - Time:  O(V² + V log V) per source on a dense oracle (each finalized
//     node scans all V candidates).
//   - Space: O(V).
//
// Errors (sentinel):
//
//   - ErrNilOracle       if the oracle is nil.
//   - ErrNodeOutOfRange  if start or end is not an arena index.
//   - ErrNegativeWeight  if a negative entry is met during relaxation.
//   - ErrUnreachable     if end cannot be reached from start.
//   - ErrTooFewStops     if OptimizeRoute gets fewer than two stops.
//   - ErrBadMaxDistance / ErrBadInfThreshold (via panic) for invalid options.
//
// Example:
//
//	p, err := dijkstra.ShortestPath(tab, a, d)
//	if errors.Is(err, dijkstra.ErrUnreachable) {
//	    // the segment cannot be driven; stop the run
//	}
//	fmt.Println(p.Nodes, p.Length)
package dijkstra
