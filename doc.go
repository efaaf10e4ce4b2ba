// Package tourkit approximates delivery tours over a table of point-to-point
// distances.
//
// A run takes an ordered stop list (start, pick-ups, drop-offs, end) and
// produces, stage by stage:
//
//	dijkstra/      – shortest paths; the stop-to-stop optimized route
//	prim_kruskal/  – minimum spanning tree over the distinct stops
//	tsp/           – odd-degree vertices, greedy matching, degree-2
//	                 multigraph, Hamiltonian circuit; Held–Karp and 2-opt
//
// Supporting packages:
//
//	core/     – arena indices, edges, tours and the Oracle interface
//	distance/ – the read-only distance table (JSON or TSPLIB input)
//	builder/  – reproducible random and grid tables
//	report/   – console transcript and JSON graph views
//	server/   – HTTP API with Prometheus metrics
//	cmd/tour, cmd/tourd – the batch/interactive CLI and the HTTP daemon
//
// Quick example:
//
//	tab, _ := distance.LoadFile("matrix.json")
//	res, err := tsp.SolveStops(tab, tsp.Stops{
//		Start: "A", Pickups: []string{"B"}, Dropoffs: []string{"C"}, End: "D",
//	})
//	fmt.Println(core.JoinNames(tab, res.Tour.Nodes), res.Tour.Length)
//
// The circuit is a heuristic: greedy matching stands in for a minimum-weight
// perfect matching, so no approximation ratio is guaranteed.
package tourkit
