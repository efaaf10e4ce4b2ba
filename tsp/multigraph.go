package tsp

import (
	"errors"
	"fmt"

	"github.com/yourbasic/bit"

	"github.com/katalvlaran/tourkit/core"
)

// PlaceholderWeight is the weight given to a synthesized edge whose two
// endpoints are the same node. Such an edge only appears when the tree lists a
// node twice, an upstream invariant failure recorded in Multigraph.Degenerate.
const PlaceholderWeight int64 = 1

// DegreeViolation records a node that ended assembly with a degree other than 2.
type DegreeViolation struct {
	Node   int
	Degree int
}

// Multigraph is the degree-capped union of tree and matching edges.
type Multigraph struct {
	// Edges in insertion order: tree edges, matching edges, synthesized edges.
	Edges []core.Edge

	// Degree holds the final degree of every tree node.
	Degree map[int]int

	// Synthesized is the number of edges added by the deficient-node pass.
	Synthesized int

	// Violations lists the nodes whose degree is not 2, in tree order.
	Violations []DegreeViolation

	// Degenerate lists the synthesized self-edges that got PlaceholderWeight.
	Degenerate []core.Edge
}

// Err joins the violations and degenerate edges into one error matching
// ErrDegreeInvariant, or returns nil when every node has degree 2.
func (m Multigraph) Err() error {
	if len(m.Violations) == 0 && len(m.Degenerate) == 0 {
		return nil
	}
	errs := make([]error, 0, len(m.Violations)+len(m.Degenerate))
	for _, v := range m.Violations {
		errs = append(errs, fmt.Errorf("%w: node %d has degree %d", ErrDegreeInvariant, v.Node, v.Degree))
	}
	for _, e := range m.Degenerate {
		errs = append(errs, fmt.Errorf("%w: self-edge on node %d", ErrDegreeInvariant, e.From))
	}

	return errors.Join(errs...)
}

// AssembleMultigraph merges the tree and the matching into an edge list in
// which every node is meant to have degree exactly 2.
//
// Steps:
//  1. Copy every unique tree edge while both endpoints have degree < 2.
//  2. Copy every unique matching edge under the same cap.
//  3. Pair the nodes still below degree 2, in tree order, with synthesized
//     edges weighted by the direct distance o.DistanceAt(a, b)
//     (PlaceholderWeight when a == b), until no further pair is possible.
//  4. Record a DegreeViolation for every node whose degree is not 2.
//
// Violations are reported, not repaired; the caller decides whether to go on.
// Edges are unique by canonical key across all three steps.
//
// Complexity: O(V + E + d²) with d the number of deficient nodes.
func AssembleMultigraph(tree []core.Vertex, matching []core.Edge, o core.Oracle) Multigraph {
	mg := Multigraph{
		Edges:  make([]core.Edge, 0, len(tree)),
		Degree: make(map[int]int, len(tree)),
	}
	for _, v := range tree {
		mg.Degree[v.ID] = 0
	}
	seen := make(map[core.EdgeKey]struct{}, len(tree))

	add := func(e core.Edge) bool {
		if _, dup := seen[e.Key()]; dup {
			return false
		}
		df, okf := mg.Degree[e.From]
		dt, okt := mg.Degree[e.To]
		if !okf || !okt || df >= 2 || dt >= 2 {
			return false
		}
		seen[e.Key()] = struct{}{}
		mg.Edges = append(mg.Edges, e)
		mg.Degree[e.From]++
		mg.Degree[e.To]++

		return true
	}

	// 1. Tree edges.
	var (
		v core.Vertex
		e core.Edge
	)
	for _, v = range tree {
		for _, e = range v.Adj {
			add(e)
		}
	}

	// 2. Matching edges.
	for _, e = range matching {
		add(e)
	}

	// 3. Deficient nodes, by tree position.
	deficient := new(bit.Set)
	var i, j int
	for i = range tree {
		if mg.Degree[tree[i].ID] < 2 {
			deficient.Add(i)
		}
	}
	var a, b int
	for i = deficient.Next(-1); i != -1; i = deficient.Next(i) {
		for j = deficient.Next(i); j != -1 && deficient.Contains(i); j = deficient.Next(j) {
			a, b = tree[i].ID, tree[j].ID
			e = core.NewEdge(a, b, PlaceholderWeight)
			if a != b {
				e.Weight = o.DistanceAt(a, b)
			}
			if !add(e) {
				continue
			}
			mg.Synthesized++
			if a == b {
				mg.Degenerate = append(mg.Degenerate, e)
			}
			if mg.Degree[a] >= 2 {
				deficient.Delete(i)
			}
			if mg.Degree[b] >= 2 {
				deficient.Delete(j)
			}
		}
	}

	// 4. Postcondition check.
	for _, v = range tree {
		if d := mg.Degree[v.ID]; d != 2 {
			mg.Violations = append(mg.Violations, DegreeViolation{Node: v.ID, Degree: d})
		}
	}

	return mg
}
