package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourkit/core"
	"github.com/katalvlaran/tourkit/distance"
)

// matrix is a bare oracle; -1 entries read as core.Inf.
type matrix [][]int64

func (m matrix) Len() int { return len(m) }

func (m matrix) DistanceAt(i, j int) int64 {
	if i < 0 || j < 0 || i >= len(m) || j >= len(m) || m[i][j] == -1 {
		return core.Inf
	}

	return m[i][j]
}

// complete builds a random complete oracle with weights in [1, maxW].
// When sym is true the oracle is symmetric.
func complete(r *rand.Rand, n, maxW int, sym bool) matrix {
	m := make(matrix, n)
	for i := range m {
		m[i] = make([]int64, n)
	}
	for i := 0; i < n; i++ {
		m[i][i] = -1
		for j := 0; j < n; j++ {
			if i == j || (sym && j < i) {
				continue
			}
			m[i][j] = int64(1 + r.Intn(maxW))
			if sym {
				m[j][i] = m[i][j]
			}
		}
	}

	return m
}

// abcd is the symmetric 4-node table: A-B=1 A-C=4 A-D=3 B-C=2 B-D=5 C-D=1.
func abcd(t testing.TB) *distance.Table {
	t.Helper()
	tab, err := distance.New(map[string]map[string]int64{
		"A": {"B": 1, "C": 4, "D": 3},
		"B": {"A": 1, "C": 2, "D": 5},
		"C": {"A": 4, "B": 2, "D": 1},
		"D": {"A": 3, "B": 5, "C": 1},
	})
	require.NoError(t, err)

	return tab
}

// bruteForceTour returns the least circuit length over nodes with nodes[0]
// fixed as the start, by enumerating every permutation of the rest.
func bruteForceTour(o core.Oracle, nodes []int) int64 {
	rest := append([]int(nil), nodes[1:]...)
	best := core.Inf
	var rec func(k int)
	rec = func(k int) {
		if k == len(rest) {
			walk := append(append([]int{nodes[0]}, rest...), nodes[0])
			if l := core.SumPath(o, walk); l < best {
				best = l
			}
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			rec(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	rec(0)

	return best
}

// sequence returns 0..n-1.
func sequence(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}

	return ids
}
