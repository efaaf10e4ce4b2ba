package core

import (
	"errors"
	"math"
)

// Inf is the sentinel distance for "no entry in the table".
const Inf int64 = math.MaxInt64

// Sentinel errors for core validation helpers.
var (
	// ErrTourNotClosed indicates the first and last element of a tour differ.
	ErrTourNotClosed = errors.New("core: tour is not closed")

	// ErrTourLength indicates a tour whose length is not n+1.
	ErrTourLength = errors.New("core: tour length mismatch")

	// ErrTourRepeat indicates a node visited more than once (or a missing node).
	ErrTourRepeat = errors.New("core: tour repeats a node")
)

// Oracle answers point-to-point distance queries over an arena of n nodes.
// Implementations must be safe for concurrent reads and must never mutate
// their data once handed to an algorithm.
type Oracle interface {
	// Len returns the number of nodes in the arena.
	Len() int

	// DistanceAt returns the weight of i→j, or Inf when absent.
	DistanceAt(i, j int) int64
}

// NamedOracle is an Oracle whose nodes carry human-readable names.
type NamedOracle interface {
	Oracle

	// Name returns the name of node i.
	Name(i int) string

	// Index returns the arena index of name.
	Index(name string) (int, bool)

	// Nodes returns all node names in index order.
	Nodes() []string
}

// Edge is an immutable weighted connection From→To between two arena nodes.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// EdgeKey is the canonical identity of an undirected edge, U <= V.
type EdgeKey struct {
	U int
	V int
}

// NewEdge builds an Edge value.
func NewEdge(from, to int, weight int64) Edge {
	return Edge{From: from, To: to, Weight: weight}
}

// Key returns the canonical undirected key of e.
func (e Edge) Key() EdgeKey {
	if e.From <= e.To {
		return EdgeKey{U: e.From, V: e.To}
	}

	return EdgeKey{U: e.To, V: e.From}
}

// Reverse returns the same edge oriented To→From.
func (e Edge) Reverse() Edge {
	return Edge{From: e.To, To: e.From, Weight: e.Weight}
}

// Touches reports whether v is an endpoint of e.
func (e Edge) Touches(v int) bool {
	return e.From == v || e.To == v
}

// Other returns the endpoint opposite to v. ok is false when v is not an
// endpoint of e.
func (e Edge) Other(v int) (other int, ok bool) {
	switch v {
	case e.From:
		return e.To, true
	case e.To:
		return e.From, true
	default:
		return -1, false
	}
}

// Vertex is an MST node: its arena ID plus the incident tree edges, each
// oriented out of ID, in the order they were committed.
type Vertex struct {
	ID  int
	Adj []Edge
}

// Degree returns the number of incident edges.
func (v Vertex) Degree() int {
	return len(v.Adj)
}

// AddWeight returns a+b, saturating at Inf.
//
// Complexity: O(1).
func AddWeight(a, b int64) int64 {
	if a == Inf || b == Inf {
		return Inf
	}
	if a > Inf-b {
		return Inf
	}

	return a + b
}

// SumPath sums the legs nodes[i]→nodes[i+1] of a walk. A walk of fewer than
// two nodes has length 0.
//
// Complexity: O(len(nodes)).
func SumPath(o Oracle, nodes []int) int64 {
	var (
		total int64
		i     int
	)
	for i = 0; i+1 < len(nodes); i++ {
		total = AddWeight(total, o.DistanceAt(nodes[i], nodes[i+1]))
	}

	return total
}

// UniqueEdges flattens the adjacency of vertices into a list holding every
// undirected edge once, in first-seen order.
//
// Complexity: O(V + E).
func UniqueEdges(vertices []Vertex) []Edge {
	seen := make(map[EdgeKey]struct{})
	out := make([]Edge, 0, len(vertices))

	var (
		v  Vertex
		e  Edge
		ok bool
	)
	for _, v = range vertices {
		for _, e = range v.Adj {
			if _, ok = seen[e.Key()]; ok {
				continue
			}
			seen[e.Key()] = struct{}{}
			out = append(out, e)
		}
	}

	return out
}

// TotalWeight sums the weights of edges, saturating at Inf.
func TotalWeight(edges []Edge) int64 {
	var total int64
	for _, e := range edges {
		total = AddWeight(total, e.Weight)
	}

	return total
}
