// SPDX-License-Identifier: MIT

// Package matrix provides the fixed-capacity dynamic-programming table used by
// the aligners.
//
// The matrix package provides:
//
//   - Table: a row-major grid of Cell values allocated once at its maximum
//     size and reused through Reset, which exposes a smaller logical view.
//   - Cell: a score plus the traceback Origin (Start, Diagonal, Vertical,
//     Horizontal) and the jump length of that origin.
//   - Bounds-checked At/Set and a no-copy Row view for hot loops. Every
//     caller-triggered condition is reported through the sentinels in
//     errors.go, never by panicking.
//
// A Table is not safe for concurrent use; each aligner owns its own.
package matrix
