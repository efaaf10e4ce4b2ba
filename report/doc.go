// Package report renders the output of the tour pipeline.
//
// Printer writes the progressive console transcript of a run: the distance
// table, the optimized route, the MST edges, the odd-degree vertices, the
// matching, the multigraph and the final circuit. Its Stage method has the
// signature of a tsp stage hook, so a run can be traced as it happens:
//
//	p := &report.Printer{W: os.Stdout, Names: tab}
//	res, err := tsp.SolveStops(tab, stops, tsp.WithStageHook(p.Stage))
//
// View is the hand-off to a graph renderer: a node list, an edge list and the
// stop order (first entry drawn as the start, last as the end). Views builds
// the three graphs of a completed run and WriteViews encodes them as JSON.
// Nothing in this package draws.
package report
