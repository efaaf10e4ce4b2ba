// Package tsp - 2-opt local search over a closed circuit.
//
// TwoOpt performs deterministic first-improvement 2-opt: for cut positions
// 1 ≤ i < k ≤ n−1 it reverses the segment [i..k] and keeps the move if the
// whole circuit gets strictly shorter, then restarts the scan.
//
// The candidate length is recomputed leg by leg against the oracle, so the
// pass is also correct on asymmetric tables where reversing a segment changes
// the cost of its inner legs.
//
// Contracts:
//   - the input is a closed tour (first == last); its start stays fixed.
//   - tours with fewer than four distinct nodes are returned unchanged.
//
// Complexity: O(n³) per improving pass; the number of passes is bounded
// because every accepted move strictly lowers an integer length.
package tsp

import (
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/tourkit/core"
)

// TwoOpt runs first-improvement 2-opt from t and returns the improved circuit.
// The input tour is never modified.
func TwoOpt(t core.Tour, o core.Oracle) core.Tour {
	cur := slices.Clone(t.Nodes)
	length := core.SumPath(o, cur)
	n := len(cur) - 1
	if n < 4 {
		return core.Tour{Nodes: cur, Length: length}
	}

	cand := make([]int, len(cur))
	var (
		i, k     int
		l        int64
		improved = true
	)
	for improved {
		improved = false
		for i = 1; i <= n-2 && !improved; i++ {
			for k = i + 1; k <= n-1; k++ {
				copy(cand, cur)
				slices.Reverse(cand[i : k+1])
				if l = core.SumPath(o, cand); l < length {
					cur, cand = cand, cur
					length = l
					improved = true
					break
				}
			}
		}
	}

	return core.Tour{Nodes: cur, Length: length}
}
