package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourkit/core"
	"github.com/katalvlaran/tourkit/dijkstra"
	"github.com/katalvlaran/tourkit/distance"
	"github.com/katalvlaran/tourkit/report"
	"github.com/katalvlaran/tourkit/tsp"
)

func abcd(t testing.TB) *distance.Table {
	t.Helper()
	tab, err := distance.New(map[string]map[string]int64{
		"A": {"B": 1, "C": 4, "D": 3},
		"B": {"A": 1, "C": 2, "D": 5},
		"C": {"A": 4, "B": 2, "D": 1},
		"D": {"A": 3, "B": 5, "C": 1},
	})
	require.NoError(t, err)

	return tab
}

var allFour = tsp.Stops{Start: "A", Pickups: []string{"B"}, Dropoffs: []string{"C"}, End: "D"}

func TestPrinter_Matrix(t *testing.T) {
	tab, err := distance.New(map[string]map[string]int64{
		"B": {"A": 2},
		"A": {"B": 1},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	p := &report.Printer{W: &buf, Names: tab}
	p.Matrix()
	require.NoError(t, p.Err())
	assert.Equal(t, "Adjacency Matrix Loaded:\nFrom A:\n  To B = 1 units\nFrom B:\n  To A = 2 units\n", buf.String())
}

func TestPrinter_RouteAndCircuit(t *testing.T) {
	tab := abcd(t)
	var buf bytes.Buffer
	p := &report.Printer{W: &buf, Names: tab}

	p.Route(dijkstra.Route{Nodes: []int{0, 3}, Length: 3})
	p.Circuit(core.Tour{Nodes: []int{0, 1, 2, 3, 0}, Length: 7})
	require.NoError(t, p.Err())

	want := "Optimized Route: A -> D\n" +
		"Total Route Length: 3 units\n" +
		"Total Circuit Length: 7 units\n" +
		"Optimal Route (Hamiltonian Circuit): A -> B -> C -> D -> A -> End\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinter_EdgesAndOdd(t *testing.T) {
	tab := abcd(t)
	var buf bytes.Buffer
	p := &report.Printer{W: &buf, Names: tab}

	p.Edges("Edges:", []core.Edge{core.NewEdge(0, 1, 1), core.NewEdge(2, 3, core.Inf)})
	p.Odd([]int{0, 3})
	p.Odd(nil)

	want := "Edges:\n" +
		"Edge from A to B with weight 1\n" +
		"Edge from C to D with weight inf\n" +
		"Vertices with an odd degree: [A, D]\n" +
		"No odd-degree vertices found.\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinter_Violations(t *testing.T) {
	tab := abcd(t)
	var buf bytes.Buffer
	p := &report.Printer{W: &buf, Names: tab}

	p.Violations(tsp.Multigraph{})
	assert.Empty(t, buf.String())

	p.Violations(tsp.Multigraph{
		Violations: []tsp.DegreeViolation{{Node: 3, Degree: 1}},
		Degenerate: []core.Edge{core.NewEdge(2, 2, tsp.PlaceholderWeight)},
	})
	assert.Equal(t,
		"Warning: node D has degree 1, expected 2\nWarning: self-edge on C given placeholder weight 1\n",
		buf.String())
}

func TestPrinter_StageHookTranscript(t *testing.T) {
	tab := abcd(t)
	var buf bytes.Buffer
	p := &report.Printer{W: &buf, Names: tab}

	_, err := tsp.SolveStops(tab, allFour, tsp.WithStageHook(p.Stage), tsp.WithTwoOpt())
	require.NoError(t, err)
	require.NoError(t, p.Err())

	out := buf.String()
	for _, line := range []string{
		"------ Optimizing Route using Dijkstra ------",
		"Optimized Route: A -> B -> C -> D",
		"MST completed. Here are the edges:",
		"Edge from A to B with weight 1",
		"Edge from B to C with weight 2",
		"Edge from C to D with weight 1",
		"Total MST Weight: 4 units",
		"Vertices with an odd degree: [A, D]",
		"Edge from A to D with weight 3",
		"Multigraph completed. Here are the edges:",
		"Total Circuit Length: 7 units",
		"Hamiltonian Circuit completed.",
		"------ Improving Circuit with 2-opt ------",
	} {
		assert.Contains(t, out, line)
	}
	assert.NotContains(t, out, "Warning:")

	// Sections appear in pipeline order.
	route := strings.Index(out, "Optimizing Route")
	mst := strings.Index(out, "Minimum Spanning Tree")
	circuit := strings.Index(out, "Hamiltonian Circuit (Optimal Route)")
	assert.Less(t, route, mst)
	assert.Less(t, mst, circuit)
}

type failWriter struct{ n int }

func (f *failWriter) Write(b []byte) (int, error) {
	f.n++

	return 0, errors.New("disk full")
}

func TestPrinter_KeepsFirstWriteError(t *testing.T) {
	w := &failWriter{}
	p := &report.Printer{W: w, Names: abcd(t)}
	p.Matrix()
	p.Odd([]int{0})

	require.EqualError(t, p.Err(), "disk full")
	assert.Equal(t, 1, w.n)
}

func TestViews_CompletedRun(t *testing.T) {
	tab := abcd(t)
	res, err := tsp.SolveStops(tab, allFour)
	require.NoError(t, err)

	views := report.Views(res, tab)
	nodes := []string{"A", "B", "C", "D"}
	want := []report.View{
		{
			Title: report.TitleMST,
			Nodes: nodes,
			Edges: []report.ViewEdge{{From: "A", To: "B", Weight: 1}, {From: "B", To: "C", Weight: 2}, {From: "C", To: "D", Weight: 1}},
			Order: nodes,
		},
		{
			Title: report.TitleMultigraph,
			Nodes: nodes,
			Edges: []report.ViewEdge{{From: "A", To: "B", Weight: 1}, {From: "B", To: "C", Weight: 2}, {From: "C", To: "D", Weight: 1}, {From: "A", To: "D", Weight: 3}},
			Order: nodes,
		},
		{
			Title: report.TitleCircuit,
			Nodes: nodes,
			Edges: []report.ViewEdge{{From: "A", To: "B", Weight: 1}, {From: "B", To: "C", Weight: 2}, {From: "C", To: "D", Weight: 1}, {From: "D", To: "A", Weight: 3}},
			Order: nodes,
		},
	}
	if diff := cmp.Diff(want, views); diff != "" {
		t.Errorf("Views() mismatch (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteViews(&buf, views))
	var decoded []report.View
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	if diff := cmp.Diff(views, decoded); diff != "" {
		t.Errorf("WriteViews round trip mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, buf.String(), `"title": "Minimum Spanning Tree (MST)"`)
}

func TestViews_PartialRun(t *testing.T) {
	tab := abcd(t)
	res, err := tsp.Solve(tab, []int{2, 2})
	require.Error(t, err)

	assert.Empty(t, report.Views(res, tab))
	assert.Nil(t, report.Views(nil, tab))
}
