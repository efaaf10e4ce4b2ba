// SPDX-License-Identifier: MIT

// Package distance - Table storage & accessors.

package distance

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/tourkit/core"
)

// Table is a dense n×n weight matrix keyed by node name.
type Table struct {
	names []string       // index -> name, sorted ascending
	index map[string]int // name -> index
	w     [][]int64      // w[i][j] = weight i→j, core.Inf when absent
}

var _ core.NamedOracle = (*Table)(nil)

// New builds a Table from a nested mapping from → to → weight.
//
// Stages:
//  1. Reject an empty mapping and empty outer names.
//  2. Sort the outer names and assign arena indices.
//  3. Copy every entry; reject negative weights and inner names with no
//     outer row.
//
// Complexity: O(n² + n log n) time, O(n²) space.
func New(m map[string]map[string]int64) (*Table, error) {
	if len(m) == 0 {
		return nil, fmt.Errorf("%w: table has no nodes", ErrDataLoad)
	}

	names := maps.Keys(m)
	slices.Sort(names)
	if names[0] == "" {
		return nil, fmt.Errorf("%w: empty node name", ErrDataLoad)
	}

	n := len(names)
	t := &Table{
		names: names,
		index: make(map[string]int, n),
		w:     make([][]int64, n),
	}

	var (
		i, j int
		name string
	)
	for i, name = range names {
		t.index[name] = i
		t.w[i] = make([]int64, n)
		for j = range t.w[i] {
			t.w[i][j] = core.Inf
		}
	}

	var (
		row    map[string]int64
		to     string
		weight int64
		ok     bool
	)
	for i, name = range names {
		row = m[name]
		for to, weight = range row {
			if j, ok = t.index[to]; !ok {
				return nil, fmt.Errorf("%w: %q→%q references a node without a row", ErrDataLoad, name, to)
			}
			if weight < 0 {
				return nil, fmt.Errorf("%w: %q→%q has negative weight %d", ErrDataLoad, name, to, weight)
			}
			t.w[i][j] = weight
		}
	}

	return t, nil
}

// Len returns the number of nodes.
func (t *Table) Len() int { return len(t.names) }

// DistanceAt returns the weight i→j, or core.Inf when absent or out of range.
func (t *Table) DistanceAt(i, j int) int64 {
	if i < 0 || j < 0 || i >= len(t.names) || j >= len(t.names) {
		return core.Inf
	}

	return t.w[i][j]
}

// Distance returns the weight from→to by name, or core.Inf when either name
// is unknown or the entry is absent.
func (t *Table) Distance(from, to string) int64 {
	i, ok := t.index[from]
	if !ok {
		return core.Inf
	}
	j, ok := t.index[to]
	if !ok {
		return core.Inf
	}

	return t.w[i][j]
}

// Name returns the name stored at index i ("" when out of range).
func (t *Table) Name(i int) string {
	if i < 0 || i >= len(t.names) {
		return ""
	}

	return t.names[i]
}

// Index returns the arena index of name.
func (t *Table) Index(name string) (int, bool) {
	i, ok := t.index[name]

	return i, ok
}

// Has reports whether name is a node of the table.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]

	return ok
}

// Nodes returns a copy of the node names in index (ascending) order.
func (t *Table) Nodes() []string {
	return slices.Clone(t.names)
}

// Row returns a copy of the known entries of from, keyed by destination.
// Absent entries are omitted. Unknown names yield nil.
func (t *Table) Row(from string) map[string]int64 {
	i, ok := t.index[from]
	if !ok {
		return nil
	}
	row := make(map[string]int64, len(t.names))
	for j, w := range t.w[i] {
		if w != core.Inf {
			row[t.names[j]] = w
		}
	}

	return row
}

// Resolve maps stop names to arena indices, preserving order and duplicates.
// The first unknown name aborts with *InvalidNodeError.
//
// Complexity: O(len(names)).
func (t *Table) Resolve(names []string) ([]int, error) {
	ids := make([]int, len(names))
	for k, name := range names {
		i, ok := t.index[name]
		if !ok {
			return nil, &InvalidNodeError{Name: name}
		}
		ids[k] = i
	}

	return ids, nil
}
