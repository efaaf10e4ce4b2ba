package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/tourkit/core"
	"github.com/katalvlaran/tourkit/dijkstra"
	"github.com/katalvlaran/tourkit/prim_kruskal"
	"github.com/katalvlaran/tourkit/tsp"
)

// Printer writes human-readable stage output to W, naming nodes through Names.
// The first write error is kept and returned by Err; later writes are dropped.
type Printer struct {
	W     io.Writer
	Names core.NamedOracle

	err error
}

// Err returns the first write error, if any.
func (p *Printer) Err() error { return p.err }

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.W, format, args...)
}

// Header prints a section banner.
func (p *Printer) Header(title string) {
	p.printf("\n------ %s ------\n\n", title)
}

// Matrix dumps every known entry of the table, rows and columns in name order.
func (p *Printer) Matrix() {
	p.printf("Adjacency Matrix Loaded:\n")
	n := p.Names.Len()
	var i, j int
	for i = 0; i < n; i++ {
		p.printf("From %s:\n", p.Names.Name(i))
		for j = 0; j < n; j++ {
			if w := p.Names.DistanceAt(i, j); w != core.Inf {
				p.printf("  To %s = %d units\n", p.Names.Name(j), w)
			}
		}
	}
}

// Route prints the optimized stop-to-stop route and its length.
func (p *Printer) Route(r dijkstra.Route) {
	p.printf("Optimized Route: %s\n", core.JoinNames(p.Names, r.Nodes))
	p.printf("Total Route Length: %s units\n", weight(r.Length))
}

// MST prints the unique tree edges and the tree weight.
func (p *Printer) MST(t *prim_kruskal.Tree) {
	if t == nil {
		return
	}
	p.Edges("MST completed. Here are the edges:", t.Edges())
	p.printf("Total MST Weight: %s units\n", weight(t.Weight))
}

// Odd prints the odd-degree vertices.
func (p *Printer) Odd(odd []int) {
	if len(odd) == 0 {
		p.printf("No odd-degree vertices found.\n")
		return
	}
	p.printf("Vertices with an odd degree: [%s]\n", strings.Join(core.Names(p.Names, odd), ", "))
}

// Edges prints title followed by one line per edge.
func (p *Printer) Edges(title string, edges []core.Edge) {
	p.printf("%s\n", title)
	for _, e := range edges {
		p.printf("Edge from %s to %s with weight %s\n", p.Names.Name(e.From), p.Names.Name(e.To), weight(e.Weight))
	}
}

// Violations reports multigraph nodes whose degree is not 2 and the
// self-edges that were given PlaceholderWeight. It prints nothing for a
// clean multigraph.
func (p *Printer) Violations(m tsp.Multigraph) {
	for _, v := range m.Violations {
		p.printf("Warning: node %s has degree %d, expected 2\n", p.Names.Name(v.Node), v.Degree)
	}
	for _, e := range m.Degenerate {
		p.printf("Warning: self-edge on %s given placeholder weight %d\n", p.Names.Name(e.From), tsp.PlaceholderWeight)
	}
}

// Circuit prints the closed tour and its total length.
func (p *Printer) Circuit(t core.Tour) {
	p.printf("Total Circuit Length: %s units\n", weight(t.Length))
	p.printf("Optimal Route (Hamiltonian Circuit): ")
	for _, id := range t.Nodes {
		p.printf("%s -> ", p.Names.Name(id))
	}
	p.printf("End\n")
}

// Stage prints the section for stage s of r. It is meant to be registered
// with tsp.WithStageHook.
func (p *Printer) Stage(s tsp.Stage, r *tsp.Result) {
	switch s {
	case tsp.StageRoute:
		p.Header("Optimizing Route using Dijkstra")
		p.Route(r.Route)
	case tsp.StageMST:
		p.Header("Constructing Minimum Spanning Tree (MST)")
		p.MST(r.Tree)
	case tsp.StageOdd:
		p.Header("Identifying Odd Degree Vertices")
		p.Odd(r.Odd)
	case tsp.StageMatching:
		p.Header("Calculating Greedy Matching")
		p.Edges("Matching completed. Here are the edges:", r.Matching)
	case tsp.StageMultigraph:
		p.Header("Creating Multigraph")
		p.Edges("Multigraph completed. Here are the edges:", r.Multigraph.Edges)
		p.Violations(r.Multigraph)
	case tsp.StageCircuit:
		p.Header("Constructing Hamiltonian Circuit (Optimal Route)")
		p.Circuit(r.Tour)
		p.printf("Hamiltonian Circuit completed.\n")
	case tsp.StageImprove:
		if r.Improved == nil {
			return
		}
		p.Header("Improving Circuit with 2-opt")
		p.Circuit(*r.Improved)
	}
}

func weight(w int64) string {
	if w == core.Inf {
		return "inf"
	}

	return strconv.FormatInt(w, 10)
}
