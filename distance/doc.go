// SPDX-License-Identifier: MIT

// Package distance is the Distance Oracle of the tour pipeline: an immutable,
// name-indexed table of non-negative integer weights.
//
// A Table is built once (from a nested map, a JSON document or a TSPLIB
// FULL_MATRIX file) and is read-only afterwards, so a single *Table can be
// shared by every stage and by concurrent HTTP requests without locking.
//
// Node names are sorted ascending and assigned arena indices 0..n-1. A missing
// (from, to) entry means "unreachable" and reads as core.Inf.
//
// Input contract (violations wrap ErrDataLoad):
//   - at least one node; no empty names,
//   - no negative weights,
//   - every name used as an inner key is also an outer key.
//
// Lookup failures for stop names are reported as *InvalidNodeError, which
// matches ErrInvalidNode under errors.Is.
package distance
