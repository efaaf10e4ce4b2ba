package dijkstra

import (
	"errors"

	"github.com/katalvlaran/tourkit/core"
)

// Sentinel errors returned by the shortest-path engine.
var (
	// ErrNilOracle indicates that a nil core.Oracle was passed in.
	ErrNilOracle = errors.New("dijkstra: oracle is nil")

	// ErrNodeOutOfRange indicates a start/end index outside [0, Len()).
	ErrNodeOutOfRange = errors.New("dijkstra: node index out of range")

	// ErrNegativeWeight indicates that a negative distance was read from the oracle.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnreachable indicates that no finite path connects start to end.
	// The returned Path is empty and must not be used downstream.
	ErrUnreachable = errors.New("dijkstra: end is unreachable from start")

	// ErrTooFewStops indicates a route with fewer than two stops.
	ErrTooFewStops = errors.New("dijkstra: route needs at least two stops")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures a Dijkstra run.
//
// MaxDistance      – nodes whose distance would exceed this value stay unreachable.
// InfEdgeThreshold – entries with weight ≥ this threshold are treated as absent.
type Options struct {
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance caps exploration at max. Panics with ErrBadMaxDistance on a
// negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every entry with weight ≥ threshold as missing.
// Panics with ErrBadInfThreshold on a value ≤ 0.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and only core.Inf
// treated as impassable.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      core.Inf,
		InfEdgeThreshold: core.Inf,
	}
}

// Path is one least-cost walk, endpoints included.
type Path struct {
	Nodes  []int
	Length int64
}

// Hops returns the number of legs of the path (0 for a single node or an
// empty path).
func (p Path) Hops() int {
	if len(p.Nodes) == 0 {
		return 0
	}

	return len(p.Nodes) - 1
}

// Route is the concatenation of the shortest sub-paths between consecutive
// required stops.
type Route struct {
	// Nodes is the straightened walk; junction nodes appear once.
	Nodes []int

	// Length is the summed leg weight of Nodes.
	Length int64

	// Segments holds the per-pair sub-paths, in stop order.
	Segments []Path
}
