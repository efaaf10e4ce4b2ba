// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the tree from the first node of the input list over a dense core.Oracle.
package prim_kruskal

import (
	"fmt"

	"github.com/rhartert/yagh"

	"github.com/katalvlaran/tourkit/core"
)

// Prim computes the Minimum Spanning Tree of nodes by growing outwards from
// nodes[0], keeping for every vertex outside the tree its best known
// connecting edge.
//
// Error Conditions:
//   - ErrNilOracle      : if o is nil.
//   - ErrEmptyNodeSet   : if nodes is empty.
//   - ErrNodeOutOfRange : if an id is not an arena index of o.
//   - ErrDuplicateNode  : if an id appears twice.
//   - ErrDisconnected   : if every remaining vertex is at core.Inf from the tree.
//
// Steps:
//  1. Validate the node set; a single node yields an edgeless tree.
//  2. Seed the frontier with the distance root→v for every other list position.
//     The frontier is a yagh.IntMap keyed by list position, so equal costs pop
//     in list order.
//  3. While vertices remain outside the tree:
//     a. Pop the globally cheapest vertex q; an empty frontier means disconnected.
//     b. Commit the edge parent[q]→q to both endpoints' adjacency.
//     c. Relax every remaining vertex r against q using o.DistanceAt(q, r).
//
// Complexity: O(V² + V log V) time, O(V) memory.
func Prim(nodes []int, o core.Oracle) (*Tree, error) {
	// 1. Validate.
	if err := validate(nodes, o); err != nil {
		return nil, err
	}
	n := len(nodes)
	tree := newTree(nodes)
	if n == 1 {
		return tree, nil
	}

	// 2. Seed the frontier from the root at list position 0.
	var (
		pq     = yagh.New[int64](n)
		parent = make([]int, n) // list position of the best tree neighbour
		inTree = make([]bool, n)
		w      int64
		p      int
	)
	inTree[0] = true
	for p = 1; p < n; p++ {
		if w = o.DistanceAt(nodes[0], nodes[p]); w != core.Inf {
			pq.Put(p, w)
		}
	}

	// 3. Grow until every position is in the tree.
	var (
		entry yagh.Entry[int64]
		ok    bool
		q, r  int
	)
	for added := 1; added < n; added++ {
		if entry, ok = pq.Pop(); !ok {
			return nil, fmt.Errorf("%w: %d of %d nodes spanned", ErrDisconnected, added, n)
		}
		q = entry.Elem
		inTree[q] = true
		tree.commit(parent[q], q, entry.Cost)

		for r = 0; r < n; r++ {
			if inTree[r] {
				continue
			}
			w = o.DistanceAt(nodes[q], nodes[r])
			if w == core.Inf {
				continue
			}
			// Strict "<": an equal edge from an earlier tree vertex is kept.
			if pq.Contains(r) && w >= pq.GetCost(r) {
				continue
			}
			parent[r] = q
			pq.Put(r, w)
		}
	}

	return tree, nil
}
