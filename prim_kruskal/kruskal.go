// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It enumerates every finite pair of the node set and merges components with union-find.
package prim_kruskal

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/tourkit/core"
)

// pair is a candidate edge between two list positions i < j.
type pair struct {
	i, j int
	w    int64
}

// Kruskal computes the Minimum Spanning Tree of nodes with a disjoint-set
// (union-find) structure using path compression and union by rank.
//
// The weight of the undirected pair at list positions i < j is
// o.DistanceAt(nodes[i], nodes[j]); on symmetric tables Kruskal and Prim agree
// on the tree weight.
//
// Error Conditions: the same as Prim.
//
// Steps:
//  1. Validate the node set; a single node yields an edgeless tree.
//  2. Collect every finite pair (i, j), i < j.
//  3. Stable-sort pairs by ascending weight (list order breaks ties).
//  4. Initialize parent[] and rank[] per list position.
//  5. For each pair whose endpoints are in different sets: union and commit.
//  6. Fewer than |V|-1 commits → ErrDisconnected.
//
// Complexity: O(V² log V) for the dense pair list. Memory: O(V²).
func Kruskal(nodes []int, o core.Oracle) (*Tree, error) {
	// 1. Validate.
	if err := validate(nodes, o); err != nil {
		return nil, err
	}
	n := len(nodes)
	tree := newTree(nodes)
	if n == 1 {
		return tree, nil
	}

	// 2. Collect all finite pairs.
	pairs := make([]pair, 0, n*(n-1)/2)
	var (
		i, j int
		w    int64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if w = o.DistanceAt(nodes[i], nodes[j]); w != core.Inf {
				pairs = append(pairs, pair{i: i, j: j, w: w})
			}
		}
	}

	// 3. Stable sort keeps enumeration order for equal weights.
	slices.SortStableFunc(pairs, func(a, b pair) int {
		switch {
		case a.w < b.w:
			return -1
		case a.w > b.w:
			return 1
		default:
			return 0
		}
	})

	// 4. Disjoint-set over list positions.
	parent := make([]int, n)
	rank := make([]int, n)
	for i = range parent {
		parent[i] = i
	}

	// Iterative find with path compression.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank; reports whether two sets were merged.
	union := func(u, v int) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}

		return true
	}

	// 5. Commit edges across components.
	committed := 0
	for _, e := range pairs {
		if !union(e.i, e.j) {
			continue
		}
		tree.commit(e.i, e.j, e.w)
		if committed++; committed == n-1 {
			break
		}
	}

	// 6. Any component left unmerged means the node set is disconnected.
	if committed < n-1 {
		return nil, fmt.Errorf("%w: %d of %d edges", ErrDisconnected, committed, n-1)
	}

	return tree, nil
}
