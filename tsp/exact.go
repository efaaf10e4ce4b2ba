package tsp

import (
	"fmt"

	"github.com/katalvlaran/tourkit/core"
)

// MaxExactNodes bounds the node count accepted by Exact (2ⁿ·n table entries).
const MaxExactNodes = 16

// Exact returns a shortest circuit over nodes, starting and ending at nodes[0],
// using the Held–Karp dynamic-programming algorithm. It is the reference the
// heuristic circuit is measured against on small instances.
//
// dp[mask][j] = cheapest walk that starts at position 0, visits exactly the
// positions in mask (bit 0 always set), and ends at position j.
// Ties keep the lowest predecessor position, so the result is deterministic.
//
// Errors:
//   - ErrEmptyResult  if nodes is empty.
//   - ErrTooManyNodes if len(nodes) > MaxExactNodes.
//   - ErrNoTour       if every circuit uses a missing (core.Inf) leg.
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
func Exact(o core.Oracle, nodes []int) (core.Tour, error) {
	n := len(nodes)
	switch {
	case o == nil:
		return core.Tour{}, ErrNilOracle
	case n == 0:
		return core.Tour{}, ErrEmptyResult
	case n > MaxExactNodes:
		return core.Tour{}, fmt.Errorf("%w: %d > %d", ErrTooManyNodes, n, MaxExactNodes)
	case n == 1:
		return core.Tour{Nodes: []int{nodes[0], nodes[0]}}, nil
	}

	// --- 1. Allocate DP and parent tables ---
	allMask := (1 << n) - 1
	dp := make([][]int64, 1<<n)
	parent := make([][]int, 1<<n)
	var mask, j, k int
	for mask = 0; mask <= allMask; mask++ {
		dp[mask] = make([]int64, n)
		parent[mask] = make([]int, n)
		for j = 0; j < n; j++ {
			dp[mask][j] = core.Inf
			parent[mask][j] = -1
		}
	}
	dp[1][0] = 0

	// --- 2. Fill DP for every subset containing position 0 ---
	var prevMask int
	var cand int64
	for mask = 1; mask <= allMask; mask += 2 {
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prevMask = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prevMask&(1<<k) == 0 || dp[prevMask][k] == core.Inf {
					continue
				}
				cand = core.AddWeight(dp[prevMask][k], o.DistanceAt(nodes[k], nodes[j]))
				if cand < dp[mask][j] {
					dp[mask][j] = cand
					parent[mask][j] = k
				}
			}
		}
	}

	// --- 3. Close the circuit back to position 0 ---
	best, last := core.Inf, -1
	for j = 1; j < n; j++ {
		cand = core.AddWeight(dp[allMask][j], o.DistanceAt(nodes[j], nodes[0]))
		if cand < best {
			best, last = cand, j
		}
	}
	if last < 0 {
		return core.Tour{}, ErrNoTour
	}

	// --- 4. Reconstruct positions, then map back to node ids ---
	tour := make([]int, n+1)
	tour[0], tour[n] = nodes[0], nodes[0]
	mask, j = allMask, last
	for i := n - 1; i >= 1; i-- {
		tour[i] = nodes[j]
		k = parent[mask][j]
		mask ^= 1 << j
		j = k
	}

	return core.Tour{Nodes: tour, Length: best}, nil
}
