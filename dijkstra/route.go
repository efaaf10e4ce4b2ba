package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/tourkit/core"
)

// OptimizeRoute replaces each consecutive pair of stops with its shortest
// sub-path and concatenates the sub-paths, dropping the junction node that
// would otherwise appear twice. Route.Length is the summed leg weight of the
// concatenated walk.
//
// Stops may repeat (e.g. start == end); a pair of identical stops contributes
// nothing beyond its junction. The first unreachable pair aborts the whole
// route with an error wrapping ErrUnreachable and an empty Route: a broken
// segment must never reach the MST stage.
//
// Complexity: O(k·V²) for k stops.
func OptimizeRoute(o core.Oracle, stops []int, opts ...Option) (Route, error) {
	if o == nil {
		return Route{}, ErrNilOracle
	}
	if len(stops) < 2 {
		return Route{}, fmt.Errorf("%w: got %d", ErrTooFewStops, len(stops))
	}

	var (
		route = Route{Segments: make([]Path, 0, len(stops)-1)}
		seg   Path
		err   error
		i     int
	)
	for i = 0; i+1 < len(stops); i++ {
		seg, err = ShortestPath(o, stops[i], stops[i+1], opts...)
		if err != nil {
			return Route{}, fmt.Errorf("segment %d: %w", i, err)
		}
		route.Segments = append(route.Segments, seg)
		if len(route.Nodes) == 0 {
			route.Nodes = append(route.Nodes, seg.Nodes...)
			continue
		}
		route.Nodes = append(route.Nodes, seg.Nodes[1:]...)
	}
	route.Length = core.SumPath(o, route.Nodes)

	return route, nil
}
