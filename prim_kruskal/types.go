// Package prim_kruskal defines configuration options, sentinel errors and the
// Tree result shared by both MST algorithms.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tourkit/core"
)

// ErrNilOracle indicates that a nil core.Oracle was passed in.
var ErrNilOracle = errors.New("prim_kruskal: oracle is nil")

// ErrEmptyNodeSet indicates that the node set to span is empty.
var ErrEmptyNodeSet = errors.New("prim_kruskal: empty node set")

// ErrDuplicateNode indicates that the node set lists the same arena index twice.
// Callers deduplicate stop lists before building the tree.
var ErrDuplicateNode = errors.New("prim_kruskal: duplicate node in node set")

// ErrNodeOutOfRange indicates an arena index outside [0, oracle.Len()).
var ErrNodeOutOfRange = errors.New("prim_kruskal: node index out of range")

// ErrDisconnected indicates that some node cannot be attached to the tree with
// a finite edge, so a spanning tree covering every node cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: node set is disconnected")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from nodes[0], best connecting edge per vertex).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all pairs and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run.
// Use DefaultOptions() to get the pipeline default (Prim).
//
// See: prim_kruskal.Prim, prim_kruskal.Kruskal
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal. Anything else is reported by
// Compute as ErrUnknownMethod.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions with Method = MethodPrim.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodPrim}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodPrim:    Prim(nodes, o).
//	– MethodKruskal: Kruskal(nodes, o).
//	– Otherwise:     ErrUnknownMethod.
func Compute(nodes []int, o core.Oracle, opts MSTOptions) (*Tree, error) {
	switch opts.Method {
	case MethodPrim:
		return Prim(nodes, o)
	case MethodKruskal:
		return Kruskal(nodes, o)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// Tree is a spanning tree over a node set.
//
// Vertices keeps the input order of the node set. Every tree edge is stored on
// both endpoints, oriented away from the owning vertex, so Vertices[i].Degree()
// is the tree degree of Vertices[i].ID.
type Tree struct {
	Vertices []core.Vertex
	Weight   int64

	seen map[core.EdgeKey]struct{}
}

// Edges returns the V−1 tree edges, deduplicated by canonical key, in the
// order they were committed to the first endpoint's adjacency.
func (t *Tree) Edges() []core.Edge {
	return core.UniqueEdges(t.Vertices)
}

// Degree returns the tree degree of node id, or 0 if id is not in the tree.
func (t *Tree) Degree(id int) int {
	for _, v := range t.Vertices {
		if v.ID == id {
			return v.Degree()
		}
	}

	return 0
}

// Nodes returns the node ids in input order.
func (t *Tree) Nodes() []int {
	ids := make([]int, len(t.Vertices))
	for i, v := range t.Vertices {
		ids[i] = v.ID
	}

	return ids
}

// newTree returns an edgeless tree over nodes.
func newTree(nodes []int) *Tree {
	t := &Tree{
		Vertices: make([]core.Vertex, len(nodes)),
		seen:     make(map[core.EdgeKey]struct{}, len(nodes)),
	}
	for i, id := range nodes {
		t.Vertices[i] = core.Vertex{ID: id}
	}

	return t
}

// commit records the edge between list positions p and q on both endpoints.
// A canonical key already present is ignored.
func (t *Tree) commit(p, q int, w int64) {
	e := core.NewEdge(t.Vertices[p].ID, t.Vertices[q].ID, w)
	if _, dup := t.seen[e.Key()]; dup {
		return
	}
	t.seen[e.Key()] = struct{}{}
	t.Vertices[p].Adj = append(t.Vertices[p].Adj, e)
	t.Vertices[q].Adj = append(t.Vertices[q].Adj, e.Reverse())
	t.Weight = core.AddWeight(t.Weight, w)
}

// validate checks the shared preconditions of Prim and Kruskal.
func validate(nodes []int, o core.Oracle) error {
	if o == nil {
		return ErrNilOracle
	}
	if len(nodes) == 0 {
		return ErrEmptyNodeSet
	}
	n := o.Len()
	seen := make(map[int]struct{}, len(nodes))
	for _, id := range nodes {
		if id < 0 || id >= n {
			return fmt.Errorf("%w: %d of %d", ErrNodeOutOfRange, id, n)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateNode, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}
