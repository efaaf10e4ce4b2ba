package tsp_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourkit/core"
	"github.com/katalvlaran/tourkit/dijkstra"
	"github.com/katalvlaran/tourkit/distance"
	"github.com/katalvlaran/tourkit/prim_kruskal"
	"github.com/katalvlaran/tourkit/tsp"
)

// TestSolveStops_StartToEnd is the two-stop scenario: A→D is driven directly
// (3 beats A→B→C→D at 4) and the circuit over {A, D} goes there and back.
func TestSolveStops_StartToEnd(t *testing.T) {
	tab := abcd(t)
	res, err := tsp.SolveStops(tab, tsp.Stops{Start: "A", End: "D"})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "D"}, core.Names(tab, res.Route.Nodes))
	assert.Equal(t, int64(3), res.Route.Length)
	assert.Equal(t, []int{0, 3}, res.Nodes)

	require.NoError(t, res.Tour.Validate(len(res.Nodes)))
	assert.Equal(t, "A -> D -> A", core.JoinNames(tab, res.Tour.Nodes))
	assert.Equal(t, core.SumPath(tab, res.Tour.Nodes), res.Tour.Length)
	assert.Equal(t, int64(6), res.Tour.Length)

	// Two nodes can never reach degree 2 without a parallel edge.
	assert.Len(t, res.Multigraph.Violations, 2)
}

func TestSolveStops_AllFour(t *testing.T) {
	tab := abcd(t)
	res, err := tsp.SolveStops(tab, tsp.Stops{
		Start:    "A",
		Pickups:  []string{"B"},
		Dropoffs: []string{"C"},
		End:      "D",
	})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, res.Route.Nodes)
	assert.Equal(t, int64(4), res.Route.Length)
	assert.Equal(t, int64(4), res.Tree.Weight)
	assert.Len(t, res.Tree.Edges(), 3)
	assert.Equal(t, []int{0, 3}, res.Odd)
	assert.Equal(t, []core.Edge{core.NewEdge(0, 3, 3)}, res.Matching)
	assert.Len(t, res.Multigraph.Edges, 4)
	assert.Empty(t, res.Multigraph.Violations)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Path)
	assert.Equal(t, "A -> B -> C -> D -> A", core.JoinNames(tab, res.Tour.Nodes))
	assert.Equal(t, int64(7), res.Tour.Length)
	assert.Nil(t, res.Improved)
}

func TestSolveStops_RoundTripDepot(t *testing.T) {
	tab := abcd(t)
	res, err := tsp.SolveStops(tab, tsp.Stops{Start: "A", Pickups: []string{"B", "C"}, Dropoffs: []string{"D"}, End: "A"})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 0}, res.Stops)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Nodes)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, res.Route.Nodes)
	assert.Equal(t, int64(7), res.Route.Length)
	require.NoError(t, res.Tour.Validate(4))
}

func TestSolveStops_InvalidNode(t *testing.T) {
	_, err := tsp.SolveStops(abcd(t), tsp.Stops{Start: "A", Pickups: []string{"Q"}, End: "D"})
	require.ErrorIs(t, err, distance.ErrInvalidNode)

	var inv *distance.InvalidNodeError
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, "Q", inv.Name)

	_, err = tsp.SolveStops(nil, tsp.Stops{})
	assert.ErrorIs(t, err, tsp.ErrNilOracle)
}

func TestSolve_UnreachableShortCircuits(t *testing.T) {
	m := matrix{
		{-1, 1, -1},
		{1, -1, -1},
		{-1, -1, -1},
	}
	var stages []tsp.Stage
	res, err := tsp.Solve(m, []int{0, 1, 2}, tsp.WithStageHook(func(s tsp.Stage, _ *tsp.Result) {
		stages = append(stages, s)
	}))
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)

	var se *tsp.StageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, tsp.StageRoute, se.Stage)
	assert.Nil(t, res.Tree)
	assert.Empty(t, res.Tour.Nodes)
	assert.Empty(t, stages)
}

func TestSolve_EmptyTree(t *testing.T) {
	res, err := tsp.Solve(abcd(t), []int{2, 2})
	require.ErrorIs(t, err, tsp.ErrEmptyResult)

	var se *tsp.StageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, tsp.StageMST, se.Stage)
	assert.Equal(t, "tsp: mst stage: tsp: stage produced no output", err.Error())
	assert.Equal(t, []int{2}, res.Route.Nodes)
}

func TestSolve_Errors(t *testing.T) {
	_, err := tsp.Solve(nil, []int{0, 1})
	assert.ErrorIs(t, err, tsp.ErrNilOracle)

	_, err = tsp.Solve(abcd(t), []int{0})
	assert.ErrorIs(t, err, dijkstra.ErrTooFewStops)

	_, err = tsp.Solve(abcd(t), []int{0, 1}, tsp.WithMSTMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestSolve_HookSeesEveryStage(t *testing.T) {
	var stages []tsp.Stage
	hook := func(s tsp.Stage, r *tsp.Result) {
		stages = append(stages, s)
		if s == tsp.StageMST {
			assert.NotNil(t, r.Tree)
			assert.Nil(t, r.Odd)
		}
	}
	res, err := tsp.Solve(abcd(t), []int{0, 1, 2, 3}, tsp.WithStageHook(hook), tsp.WithTwoOpt())
	require.NoError(t, err)
	assert.Equal(t, []tsp.Stage{
		tsp.StageRoute, tsp.StageMST, tsp.StageOdd, tsp.StageMatching,
		tsp.StageMultigraph, tsp.StageCircuit, tsp.StageImprove,
	}, stages)
	require.NotNil(t, res.Improved)
	assert.LessOrEqual(t, res.Improved.Length, res.Tour.Length)
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "route", tsp.StageRoute.String())
	assert.Equal(t, "odd-degree", tsp.StageOdd.String())
	assert.Equal(t, "2-opt", tsp.StageImprove.String())
	assert.Equal(t, "stage(42)", tsp.Stage(42).String())
}

func TestStops_Sequence(t *testing.T) {
	s := tsp.Stops{Start: "S", Pickups: []string{"P1", "P2"}, Dropoffs: []string{"D1"}, End: "E"}
	assert.Equal(t, []string{"S", "P1", "P2", "D1", "E"}, s.Sequence())
	assert.Equal(t, []string{"", ""}, tsp.Stops{}.Sequence())
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, tsp.Distinct([]int{3, 1, 3, 2, 1}))
	assert.Empty(t, tsp.Distinct(nil))
}

// TestSolve_Properties runs the pipeline on random complete instances and
// checks the circuit, determinism and the gap to the optimum.
func TestSolve_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(31))
	for trial := 0; trial < 60; trial++ {
		n := 3 + r.Intn(5)
		m := complete(r, n, 1+r.Intn(40), trial%4 != 0)
		stops := r.Perm(n)
		if trial%5 == 0 {
			stops = append(stops, stops[0])
		}
		method := prim_kruskal.MethodPrim
		if trial%2 == 1 {
			method = prim_kruskal.MethodKruskal
		}

		res, err := tsp.Solve(m, stops, tsp.WithMSTMethod(method), tsp.WithTwoOpt())
		require.NoError(t, err, "trial %d", trial)

		assert.Zero(t, len(res.Odd)%2)
		assert.Len(t, res.Matching, len(res.Odd)/2)
		require.Len(t, res.Path, n)
		require.NoError(t, res.Tour.Validate(n))
		assert.Equal(t, stops[0], res.Tour.Nodes[0])
		assert.Equal(t, core.SumPath(m, res.Tour.Nodes), res.Tour.Length)

		opt := bruteForceTour(m, res.Nodes)
		assert.GreaterOrEqual(t, res.Tour.Length, opt)
		assert.GreaterOrEqual(t, res.Improved.Length, opt)
		assert.LessOrEqual(t, res.Improved.Length, res.Tour.Length)

		again, err := tsp.Solve(m, stops, tsp.WithMSTMethod(method), tsp.WithTwoOpt())
		require.NoError(t, err)
		assert.Equal(t, res, again, "trial %d not deterministic", trial)
	}
}
