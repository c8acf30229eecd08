// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set for the DP table.
// All Table methods return these sentinels (optionally wrapped with method and
// coordinate context); callers match them with errors.Is. No method panics on
// a caller-triggered condition.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Sentinels
// are returned bare from validation and wrapped with fmt.Errorf("...: %w")
// by the public accessors that know the coordinates.

var (
	// ErrInvalidDimensions indicates that a requested capacity is non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrCapacityExceeded indicates that a logical view larger than the
	// preallocated capacity was requested in Reset.
	ErrCapacityExceeded = errors.New("matrix: logical size exceeds capacity")

	// ErrOutOfRange indicates that a row or column index lies outside the
	// current logical view. At/Set/Row MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
