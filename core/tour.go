package core

import (
	"fmt"
	"strings"
)

// Tour is a closed walk: Nodes[0] == Nodes[len-1] and every other node appears
// exactly once. Length is the summed leg weight (Inf if any leg is missing).
type Tour struct {
	Nodes  []int
	Length int64
}

// Close turns a Hamiltonian path into a Tour by re-appending its first node
// and summing the legs against o. An empty path yields an empty Tour.
//
// Complexity: O(n).
func Close(path []int, o Oracle) Tour {
	if len(path) == 0 {
		return Tour{}
	}
	nodes := make([]int, 0, len(path)+1)
	nodes = append(nodes, path...)
	nodes = append(nodes, path[0])

	return Tour{Nodes: nodes, Length: SumPath(o, nodes)}
}

// Validate checks the closed-circuit invariants for a tour over n nodes:
// len == n+1, first == last, and positions [0..n-1] hold n distinct nodes.
//
// Complexity: O(n) time, O(n) space.
func (t Tour) Validate(n int) error {
	if len(t.Nodes) != n+1 {
		return fmt.Errorf("%w: got %d, want %d", ErrTourLength, len(t.Nodes), n+1)
	}
	if t.Nodes[0] != t.Nodes[n] {
		return ErrTourNotClosed
	}
	seen := make(map[int]struct{}, n)

	var (
		i  int
		ok bool
	)
	for i = 0; i < n; i++ {
		if _, ok = seen[t.Nodes[i]]; ok {
			return fmt.Errorf("%w: node %d at position %d", ErrTourRepeat, t.Nodes[i], i)
		}
		seen[t.Nodes[i]] = struct{}{}
	}

	return nil
}

// Legs returns the consecutive edges of the tour with their weights.
func (t Tour) Legs(o Oracle) []Edge {
	if len(t.Nodes) < 2 {
		return nil
	}
	legs := make([]Edge, 0, len(t.Nodes)-1)
	for i := 0; i+1 < len(t.Nodes); i++ {
		legs = append(legs, NewEdge(t.Nodes[i], t.Nodes[i+1], o.DistanceAt(t.Nodes[i], t.Nodes[i+1])))
	}

	return legs
}

// Names maps arena indices to names.
func Names(o NamedOracle, ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = o.Name(id)
	}

	return out
}

// JoinNames renders ids as "A -> B -> C".
func JoinNames(o NamedOracle, ids []int) string {
	return strings.Join(Names(o, ids), " -> ")
}
