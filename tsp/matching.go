package tsp

import (
	"fmt"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/tourkit/core"
)

// OddDegree returns the ids of the tree vertices with an odd number of
// incident edges, in input order. By the handshake lemma the result of a
// valid tree always has even length.
//
// Complexity: O(V).
func OddDegree(tree []core.Vertex) []int {
	odd := make([]int, 0, len(tree))
	for _, v := range tree {
		if v.Degree()%2 == 1 {
			odd = append(odd, v.ID)
		}
	}

	return odd
}

// GreedyMatch pairs up the odd-degree vertices with the "first remaining,
// nearest partner" heuristic: the first vertex still unmatched is paired with
// the remaining vertex at the strictly smallest distance (the earliest listed
// wins ties), both leave the pool, and the scan repeats.
//
// This approximates a minimum-weight perfect matching; it is not Edmonds'
// blossom algorithm and may pair vertices sub-optimally.
//
// Each edge is oriented from the first vertex to its partner. A vertex left
// without a partner returns the edges found so far together with an error
// wrapping ErrUnmatchedVertex.
//
// Complexity: O(k²), where k = len(odd).
func GreedyMatch(odd []int, o core.Oracle) ([]core.Edge, error) {
	k := len(odd)
	edges := make([]core.Edge, 0, k/2)

	// Pool of list positions still waiting for a partner.
	remaining := sparsesets.New(k)
	var p, q int
	for p = 0; p < k; p++ {
		remaining.Insert(p)
	}

	var (
		best  int
		bestD int64
		d     int64
	)
	for p = 0; p < k; p++ {
		if !remaining.Contains(p) {
			continue
		}
		remaining.Remove(p)
		if remaining.Size() == 0 {
			return edges, fmt.Errorf("%w: %d", ErrUnmatchedVertex, odd[p])
		}

		// Scan the later positions, the earlier ones are all matched.
		best = -1
		for q = p + 1; q < k; q++ {
			if !remaining.Contains(q) {
				continue
			}
			d = o.DistanceAt(odd[p], odd[q])
			if best == -1 || d < bestD {
				best, bestD = q, d
			}
		}
		remaining.Remove(best)
		edges = append(edges, core.NewEdge(odd[p], odd[best], bestD))
	}

	return edges, nil
}
