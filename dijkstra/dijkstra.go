package dijkstra

import (
	"fmt"

	"github.com/rhartert/yagh"

	"github.com/katalvlaran/tourkit/core"
)

// Distances computes shortest distances from src to every node of o.
//
// Returns:
//
//   - dist: dist[v] is the finalized distance src→v, core.Inf if unreachable.
//   - prev: prev[v] is the predecessor of v on one shortest path, -1 for src
//     and for unreachable nodes.
//   - err:  ErrNilOracle, ErrNodeOutOfRange or ErrNegativeWeight.
//
// Complexity:
//
//   - Time:  O(V² + V log V)
//   - Space: O(V)
func Distances(o core.Oracle, src int, opts ...Option) ([]int64, []int, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if o == nil {
		return nil, nil, ErrNilOracle
	}
	n := o.Len()
	if src < 0 || src >= n {
		return nil, nil, fmt.Errorf("%w: source %d of %d", ErrNodeOutOfRange, src, n)
	}

	r := &runner{
		o:       o,
		options: cfg,
		n:       n,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      yagh.New[int64](n),
	}
	r.init(src)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns one least-cost path start→end, endpoints included.
// When end is unreachable the Path is empty and the error wraps ErrUnreachable.
// start == end yields the single-node path with Length 0.
func ShortestPath(o core.Oracle, start, end int, opts ...Option) (Path, error) {
	if o == nil {
		return Path{}, ErrNilOracle
	}
	if end < 0 || end >= o.Len() {
		return Path{}, fmt.Errorf("%w: end %d of %d", ErrNodeOutOfRange, end, o.Len())
	}
	dist, prev, err := Distances(o, start, opts...)
	if err != nil {
		return Path{}, err
	}
	if dist[end] == core.Inf {
		return Path{}, fmt.Errorf("%w: %d→%d", ErrUnreachable, start, end)
	}

	// Walk the predecessor chain back from end, then reverse in place.
	nodes := make([]int, 0, 4)
	var at int
	for at = end; at != -1; at = prev[at] {
		nodes = append(nodes, at)
	}
	var i, j int
	for i, j = 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return Path{Nodes: nodes, Length: dist[end]}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	o       core.Oracle         // read-only distance source
	options Options             // thresholds
	n       int                 // arena size
	dist    []int64             // best known distance from the source
	prev    []int               // predecessor on the best known path
	visited []bool              // finalized flags
	pq      *yagh.IntMap[int64] // frontier keyed by tentative distance
}

// init sets every distance to core.Inf and seeds the frontier with the source.
func (r *runner) init(src int) {
	for v := 0; v < r.n; v++ {
		r.dist[v] = core.Inf
		r.prev[v] = -1
	}
	r.dist[src] = 0
	r.pq.Put(src, 0)
}

// process pops the closest unfinalized node until the frontier is empty.
// Entries are updated in place by Put, so a popped node is always final.
func (r *runner) process() error {
	var (
		entry yagh.Entry[int64]
		ok    bool
	)
	for r.pq.Size() > 0 {
		if entry, ok = r.pq.Pop(); !ok {
			break
		}
		r.visited[entry.Elem] = true
		if err := r.relax(entry.Elem); err != nil {
			return err
		}
	}

	return nil
}

// relax scans every not-yet-finalized node v and improves dist[v] through u
// when u→v is a finite entry below InfEdgeThreshold.
func (r *runner) relax(u int) error {
	var (
		v       int
		w       int64
		newDist int64
	)
	for v = 0; v < r.n; v++ {
		if v == u || r.visited[v] {
			continue
		}
		w = r.o.DistanceAt(u, v)
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, v, w)
		}

		newDist = core.AddWeight(r.dist[u], w)
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict "<": the first shortest distance found for v wins.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.pq.Put(v, newDist)
	}

	return nil
}
