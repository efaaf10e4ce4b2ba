// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// Option customizes a constructor before the table is generated.
type Option func(*config)

type config struct {
	idFn       IDFn
	rng        *rand.Rand
	weightFn   WeightFn
	asymmetric bool
	dropP      float64
}

// newConfig applies opts in order over the defaults: decimal IDs, no RNG,
// DefaultWeightFn, symmetric weights, no drops.
func newConfig(opts ...Option) config {
	cfg := config{idFn: DefaultIDFn, weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the node naming scheme. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-entry weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *config) {
		c.weightFn = fn
	}
}

// WithUniformWeight is WithWeightFn(UniformWeightFn(min, max)).
func WithUniformWeight(min, max int64) Option {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithAsymmetric draws i→j and j→i independently.
func WithAsymmetric() Option {
	return func(c *config) {
		c.asymmetric = true
	}
}

// WithDropProbability leaves each pair absent with probability p, in both
// directions. Panics unless 0 ≤ p ≤ 1.
func WithDropProbability(p float64) Option {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("builder: WithDropProbability(%g) outside [0,1]", p))
	}
	return func(c *config) {
		c.dropP = p
	}
}
