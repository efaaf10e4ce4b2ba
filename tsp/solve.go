package tsp

import (
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/tourkit/core"
	"github.com/katalvlaran/tourkit/dijkstra"
	"github.com/katalvlaran/tourkit/distance"
	"github.com/katalvlaran/tourkit/prim_kruskal"
)

// Solve runs the whole pipeline over a resolved stop sequence:
//
//	route      – dijkstra.OptimizeRoute over stops (repeats allowed)
//	mst        – prim_kruskal.Compute over Distinct(stops)
//	odd-degree – OddDegree(tree)
//	matching   – GreedyMatch(odd)
//	multigraph – AssembleMultigraph(tree, matching)
//	circuit    – HamiltonianPath + ClosedTour over Distinct(stops)
//	2-opt      – TwoOpt(tour), only with WithTwoOpt
//
// The first failing stage stops the run with a *StageError; stages that would
// depend on it are skipped and the partially filled Result is returned with
// the error. An unreachable stop pair fails the route stage (the error wraps
// dijkstra.ErrUnreachable). A stage with no output fails with ErrEmptyResult.
// Multigraph degree violations are not fatal: they stay in
// Result.Multigraph.Violations and the circuit is still built.
//
// Identical inputs always give identical results.
func Solve(o core.Oracle, stops []int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if o == nil {
		return nil, ErrNilOracle
	}

	res := &Result{
		Stops: slices.Clone(stops),
		Nodes: Distinct(stops),
	}

	// Route.
	route, err := dijkstra.OptimizeRoute(o, stops, cfg.Route...)
	if err != nil {
		return res, &StageError{Stage: StageRoute, Err: err}
	}
	res.Route = route
	cfg.emit(StageRoute, res)

	// MST.
	tree, err := prim_kruskal.Compute(res.Nodes, o, cfg.MST)
	if err != nil {
		return res, &StageError{Stage: StageMST, Err: err}
	}
	if len(tree.Edges()) == 0 {
		return res, &StageError{Stage: StageMST, Err: ErrEmptyResult}
	}
	res.Tree = tree
	cfg.emit(StageMST, res)

	// Odd-degree vertices.
	res.Odd = OddDegree(tree.Vertices)
	if len(res.Odd) == 0 {
		return res, &StageError{Stage: StageOdd, Err: ErrEmptyResult}
	}
	cfg.emit(StageOdd, res)

	// Matching.
	res.Matching, err = GreedyMatch(res.Odd, o)
	if err != nil {
		return res, &StageError{Stage: StageMatching, Err: err}
	}
	if len(res.Matching) == 0 {
		return res, &StageError{Stage: StageMatching, Err: ErrEmptyResult}
	}
	cfg.emit(StageMatching, res)

	// Multigraph.
	res.Multigraph = AssembleMultigraph(tree.Vertices, res.Matching, o)
	if len(res.Multigraph.Edges) == 0 {
		return res, &StageError{Stage: StageMultigraph, Err: ErrEmptyResult}
	}
	cfg.emit(StageMultigraph, res)

	// Circuit.
	res.Path = HamiltonianPath(res.Multigraph.Edges, res.Nodes)
	if len(res.Path) == 0 {
		return res, &StageError{Stage: StageCircuit, Err: ErrEmptyResult}
	}
	res.Tour = ClosedTour(res.Path, o)
	cfg.emit(StageCircuit, res)

	if cfg.TwoOpt {
		improved := TwoOpt(res.Tour, o)
		res.Improved = &improved
		cfg.emit(StageImprove, res)
	}

	return res, nil
}

// SolveStops resolves the stop names against t and runs Solve. An unknown
// name fails with a *distance.InvalidNodeError before any stage runs.
func SolveStops(t core.NamedOracle, s Stops, opts ...Option) (*Result, error) {
	if t == nil {
		return nil, ErrNilOracle
	}
	seq := s.Sequence()
	ids := make([]int, len(seq))
	var (
		id int
		ok bool
	)
	for i, name := range seq {
		if id, ok = t.Index(name); !ok {
			return nil, &distance.InvalidNodeError{Name: name}
		}
		ids[i] = id
	}

	return Solve(t, ids, opts...)
}

// Distinct returns ids without repeats, keeping first occurrences in order.
func Distinct(ids []int) []int {
	out := make([]int, 0, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
