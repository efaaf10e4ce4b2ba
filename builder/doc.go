// Package builder generates reproducible distance tables for tests,
// benchmarks and the -random mode of the tour command.
//
// The package offers the following key components:
//
//   - Constructors:
//     – Complete(n, opts...):   every ordered pair gets a weight from the WeightFn.
//     – Grid(rows, cols, opts...): cells "r,c" at Manhattan distance.
//   - Configuration primitives:
//     – Option:            a function that mutates the builder config before use.
//     – WithSeed/WithRand: the RNG used by weights and drops.
//     – WithIDScheme:      node naming (DefaultIDFn, SymbolIDFn, ExcelColumnIDFn, …).
//     – WithWeightFn:      weight distribution (ConstantWeightFn, UniformWeightFn).
//     – WithAsymmetric:    draw i→j and j→i independently.
//     – WithDropProbability: leave an entry absent (core.Inf) with probability p.
//   - Sentinel errors: ErrTooFewVertices, ErrNeedRandSource, ErrConstructFailed.
//
// Determinism: the same options and seed always give the same table. Pairs are
// visited in ascending (i, j) order and every draw happens in that order.
//
// Option constructors panic on meaningless values (nil functions, p outside
// [0,1]); constructors never panic and report the sentinels above.
package builder
