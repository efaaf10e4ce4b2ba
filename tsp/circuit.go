package tsp

import (
	"github.com/yourbasic/bit"

	"github.com/katalvlaran/tourkit/core"
)

// HamiltonianPath walks the degree-2 multigraph into a path over vertices,
// visiting each list position exactly once.
//
// The walk starts at vertices[0]. At every step it scans edges in list order
// and follows the first one leading from the current tail to an unvisited
// vertex. When the tail is stuck (the multigraph is usually a union of
// disjoint cycles) it jumps to the first unvisited vertex in list order,
// whatever its distance from the tail. The jump is a patch, not a shortest
// extension, and is where most of the tour's excess length comes from.
//
// Edges touching nodes outside vertices are ignored. An empty vertex list
// returns nil.
//
// Complexity: O(V·E) time, O(V) space.
func HamiltonianPath(edges []core.Edge, vertices []int) []int {
	n := len(vertices)
	if n == 0 {
		return nil
	}
	pos := make(map[int]int, n)
	for i := n - 1; i >= 0; i-- {
		pos[vertices[i]] = i
	}

	visited := bit.New(0) // list positions, the start is visited
	path := make([]int, 1, n)
	path[0] = vertices[0]

	var (
		tail, next, p int
		ok, added     bool
		e             core.Edge
	)
	for len(path) < n {
		tail = path[len(path)-1]
		added = false
		for _, e = range edges {
			if next, ok = e.Other(tail); !ok {
				continue
			}
			if p, ok = pos[next]; !ok || visited.Contains(p) {
				continue
			}
			visited.Add(p)
			path = append(path, next)
			added = true
			break
		}
		if added {
			continue
		}

		// Stuck: fall back to the next unvisited position.
		p = 1
		for p < n && visited.Contains(p) {
			p++
		}
		if p == n {
			break
		}
		visited.Add(p)
		path = append(path, vertices[p])
	}

	return path
}

// ClosedTour closes a Hamiltonian path into a circuit by re-appending its
// first vertex, and sums the legs against o.
func ClosedTour(path []int, o core.Oracle) core.Tour {
	return core.Close(path, o)
}
