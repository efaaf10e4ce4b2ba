// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/tourkit/distance"
)

const (
	methodComplete   = "Complete"
	methodGrid       = "Grid"
	minCompleteNodes = 1
	minGridDim       = 1
	gridIDFmt        = "%d,%d"
)

// Complete returns a table over n nodes named by the ID scheme in which
// every ordered pair i≠j has a weight from the configured WeightFn.
//
// Steps:
//  1. Validate n and resolve options.
//  2. For each pair i<j in ascending order: draw the drop decision, then
//     w(i→j), then w(j→i) when asymmetric (mirrored otherwise).
//  3. Hand the mapping to distance.New.
//
// Errors: ErrTooFewVertices, ErrNeedRandSource (drops without an RNG),
// ErrConstructFailed (repeated names or a rejected table).
//
// Complexity: O(n²) time and space.
func Complete(n int, opts ...Option) (*distance.Table, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	if cfg.dropP > 0 && cfg.rng == nil {
		return nil, fmt.Errorf("%s: drop probability %g: %w", methodComplete, cfg.dropP, ErrNeedRandSource)
	}

	m, ids, err := newRows(methodComplete, n, cfg.idFn)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		w    int64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if cfg.drop() {
				continue
			}
			w = cfg.weightFn(cfg.rng)
			m[ids[i]][ids[j]] = w
			if cfg.asymmetric {
				w = cfg.weightFn(cfg.rng)
			}
			m[ids[j]][ids[i]] = w
		}
	}

	return build(methodComplete, m)
}

// Grid returns a table over the cells of a rows×cols grid, named "r,c",
// where the weight between two cells is their Manhattan distance. Only
// WithDropProbability and the RNG options are honoured.
//
// Complexity: O((rows·cols)²) time and space.
func Grid(rows, cols int, opts ...Option) (*distance.Table, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	if cfg.dropP > 0 && cfg.rng == nil {
		return nil, fmt.Errorf("%s: drop probability %g: %w", methodGrid, cfg.dropP, ErrNeedRandSource)
	}

	n := rows * cols
	m, ids, err := newRows(methodGrid, n, func(idx int) string {
		return fmt.Sprintf(gridIDFmt, idx/cols, idx%cols)
	})
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if cfg.drop() {
				continue
			}
			w := int64(abs(i/cols-j/cols) + abs(i%cols-j%cols))
			m[ids[i]][ids[j]] = w
			m[ids[j]][ids[i]] = w
		}
	}

	return build(methodGrid, m)
}

func (c config) drop() bool {
	return c.dropP > 0 && c.rng.Float64() < c.dropP
}

// newRows names n nodes and allocates one empty row per name.
func newRows(method string, n int, idFn IDFn) (map[string]map[string]int64, []string, error) {
	m := make(map[string]map[string]int64, n)
	ids := make([]string, n)
	for i := range ids {
		ids[i] = idFn(i)
		if _, dup := m[ids[i]]; dup {
			return nil, nil, fmt.Errorf("%s: ID scheme repeats %q: %w", method, ids[i], ErrConstructFailed)
		}
		m[ids[i]] = make(map[string]int64, n-1)
	}

	return m, ids, nil
}

func build(method string, m map[string]map[string]int64) (*distance.Table, error) {
	t, err := distance.New(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", method, err, ErrConstructFailed)
	}

	return t, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
