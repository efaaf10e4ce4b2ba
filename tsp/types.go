package tsp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tourkit/core"
	"github.com/katalvlaran/tourkit/dijkstra"
	"github.com/katalvlaran/tourkit/prim_kruskal"
)

// Sentinel errors of the tour pipeline.
var (
	// ErrNilOracle indicates that a nil oracle was passed to Solve.
	ErrNilOracle = errors.New("tsp: oracle is nil")

	// ErrEmptyResult indicates that a stage produced no output. The stages
	// depending on it are skipped.
	ErrEmptyResult = errors.New("tsp: stage produced no output")

	// ErrUnmatchedVertex indicates that greedy matching left a vertex without
	// a partner, which means the odd-degree list had odd length.
	ErrUnmatchedVertex = errors.New("tsp: odd-degree vertex left unmatched")

	// ErrDegreeInvariant indicates a multigraph node whose degree is not 2.
	// It is reported through Multigraph.Err and never aborts a run.
	ErrDegreeInvariant = errors.New("tsp: multigraph node degree is not 2")

	// ErrTooManyNodes indicates an Exact call on more than MaxExactNodes nodes.
	ErrTooManyNodes = errors.New("tsp: too many nodes for exact search")

	// ErrNoTour indicates that no finite Hamiltonian circuit exists.
	ErrNoTour = errors.New("tsp: no finite circuit exists")
)

// Stage names one step of the pipeline.
type Stage int

// Pipeline stages in execution order.
const (
	StageRoute Stage = iota
	StageMST
	StageOdd
	StageMatching
	StageMultigraph
	StageCircuit
	StageImprove
)

var stageNames = [...]string{
	StageRoute:      "route",
	StageMST:        "mst",
	StageOdd:        "odd-degree",
	StageMatching:   "matching",
	StageMultigraph: "multigraph",
	StageCircuit:    "circuit",
	StageImprove:    "2-opt",
}

// String returns the lower-case stage name.
func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", int(s))
	}

	return stageNames[s]
}

// StageError reports the stage at which a run stopped.
type StageError struct {
	Stage Stage
	Err   error
}

// Error implements error.
func (e *StageError) Error() string {
	return fmt.Sprintf("tsp: %s stage: %v", e.Stage, e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *StageError) Unwrap() error { return e.Err }

// Stops is the externally supplied ordered list of required stops.
type Stops struct {
	Start    string
	Pickups  []string
	Dropoffs []string
	End      string
}

// Sequence returns [start, pickups…, dropoffs…, end].
func (s Stops) Sequence() []string {
	seq := make([]string, 0, len(s.Pickups)+len(s.Dropoffs)+2)
	seq = append(seq, s.Start)
	seq = append(seq, s.Pickups...)
	seq = append(seq, s.Dropoffs...)
	seq = append(seq, s.End)

	return seq
}

// Result collects the output of every completed stage. A run that stops early
// leaves the fields of the skipped stages at their zero values.
type Result struct {
	// Stops is the resolved stop sequence, repeats included.
	Stops []int

	// Nodes is the circuit node set: Stops without repeats, first occurrence kept.
	Nodes []int

	Route      dijkstra.Route
	Tree       *prim_kruskal.Tree
	Odd        []int
	Matching   []core.Edge
	Multigraph Multigraph

	// Path is the Hamiltonian path over Nodes; Tour closes it.
	Path []int
	Tour core.Tour

	// Improved is the 2-opt refinement of Tour, set only when WithTwoOpt is used.
	Improved *core.Tour
}

// Options configures Solve.
type Options struct {
	MST    prim_kruskal.MSTOptions
	Route  []dijkstra.Option
	TwoOpt bool

	// Hook, when non-nil, runs after every completed stage.
	Hook func(Stage, *Result)
}

// Option is a functional option for Solve.
type Option func(*Options)

// DefaultOptions returns Prim MSTs, default Dijkstra options, no 2-opt pass and no hook.
func DefaultOptions() Options {
	return Options{MST: prim_kruskal.DefaultOptions()}
}

// WithMSTMethod selects prim_kruskal.MethodPrim or prim_kruskal.MethodKruskal.
func WithMSTMethod(method string) Option {
	return func(o *Options) {
		prim_kruskal.WithMethod(method)(&o.MST)
	}
}

// WithRouteOptions forwards opts to every shortest-path query of the route stage.
func WithRouteOptions(opts ...dijkstra.Option) Option {
	return func(o *Options) {
		o.Route = append(o.Route, opts...)
	}
}

// WithStageHook registers h to be called after each completed stage.
func WithStageHook(h func(Stage, *Result)) Option {
	return func(o *Options) {
		o.Hook = h
	}
}

// WithTwoOpt enables a first-improvement 2-opt pass over the final circuit.
// The heuristic circuit stays in Result.Tour; the refinement goes to Result.Improved.
func WithTwoOpt() Option {
	return func(o *Options) {
		o.TwoOpt = true
	}
}

func (o Options) emit(s Stage, r *Result) {
	if o.Hook != nil {
		o.Hook(s, r)
	}
}
