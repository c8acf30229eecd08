// SPDX-License-Identifier: MIT

// Package matrix - preallocated DP table (row-major) & safe accessors.
//
// Purpose:
//   - Hold one Cell (score + traceback origin) per DP position.
//   - Allocate once at the configured maximum and expose only a logical
//     rows×cols sub-rectangle per use (arena-style reuse, no reallocation).
//   - Guarantee safety at the public surface: At/Set/Row return errors
//     instead of panicking.
//
// Layout:
//   - Physical stride is maxCols; the logical cell (i, j) lives at
//     offset i*maxCols + j. Rows of the logical view are therefore
//     contiguous and can be handed out as sub-slices without copying.
//
// Complexity quicksheet:
//   - NewTable: O(maxRows*maxCols) zero-init; Reset: O(rows*cols);
//     At/Set/Row: O(1).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxRow   = "Row"   // method tag used in error wrappers
	ctxReset = "Reset" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Origin identifies which predecessor produced a cell's score.
type Origin uint8

const (
	// None marks a cell that has not been written since the last Reset.
	None Origin = iota

	// Start marks a traceback terminal: cell (0,0), or a local-alignment
	// cell whose score was clipped to zero.
	Start

	// Diagonal marks a match/mismatch step from (i-1, j-1).
	Diagonal

	// Vertical marks a gap run of Len cells from (i-Len, j): symbols of the
	// first sequence aligned against gaps.
	Vertical

	// Horizontal marks a gap run of Len cells from (i, j-Len): symbols of
	// the second sequence aligned against gaps.
	Horizontal
)

// String returns a short lower-case name for o.
func (o Origin) String() string {
	switch o {
	case Start:
		return "start"
	case Diagonal:
		return "diagonal"
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "none"
	}
}

// Cell is one DP position.
//   - Score is the best score of any alignment ending here.
//   - Origin/Len tell the traceback where that score came from; Len is the
//     jump length (1 for Diagonal, k for a gap run, 0 for Start/None).
type Cell struct {
	Score  float64
	Origin Origin
	Len    int
}

// tableErrorf wraps an error with a uniform Table context and callsite indices.
func tableErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, row, col, err)
}

// Table is a fixed-capacity DP matrix.
//   - maxRows, maxCols fix the physical buffer (len == maxRows*maxCols).
//   - rows, cols describe the logical view set by the last Reset.
type Table struct {
	maxRows, maxCols int    // physical capacity; maxCols is the row stride
	rows, cols       int    // logical view (<= capacity)
	cells            []Cell // contiguous row-major storage
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Table)(nil)

// NewTable preallocates a maxRows×maxCols table with an empty logical view.
// MAIN DESCRIPTION:
//   - Public constructor with strict capacity validation.
//
// Implementation:
//   - Stage 1: validate maxRows>0 && maxCols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate the zero-filled flat buffer once.
//
// Errors:
//   - ErrInvalidDimensions (capacity contract violation).
//
// Complexity:
//   - Time O(maxRows*maxCols), Space O(maxRows*maxCols).
func NewTable(maxRows, maxCols int) (*Table, error) {
	if maxRows <= 0 || maxCols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Table{
		maxRows: maxRows,
		maxCols: maxCols,
		cells:   make([]Cell, maxRows*maxCols),
	}, nil
}

// Reset sets the logical view to rows×cols and zeroes it.
// MAIN DESCRIPTION:
//   - Prepare the table for a new fill without touching memory outside the view.
//
// Implementation:
//   - Stage 1: validate 0 <= rows <= maxRows and 0 <= cols <= maxCols.
//   - Stage 2: clear each logical row slice.
//
// Behavior highlights:
//   - On error the previous view is left untouched.
//
// Errors:
//   - ErrCapacityExceeded when the view does not fit; ErrOutOfRange on negatives.
//
// Complexity:
//   - Time O(rows*cols), Space O(1).
func (t *Table) Reset(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return tableErrorf(ctxReset, rows, cols, ErrOutOfRange)
	}
	if rows > t.maxRows || cols > t.maxCols {
		return tableErrorf(ctxReset, rows, cols, ErrCapacityExceeded)
	}
	t.rows, t.cols = rows, cols
	for i := 0; i < rows; i++ {
		clear(t.cells[i*t.maxCols : i*t.maxCols+cols])
	}

	return nil
}

// Rows returns the logical row count. Complexity: O(1).
func (t *Table) Rows() int { return t.rows }

// Cols returns the logical column count. Complexity: O(1).
func (t *Table) Cols() int { return t.cols }

// MaxRows returns the physical row capacity. Complexity: O(1).
func (t *Table) MaxRows() int { return t.maxRows }

// MaxCols returns the physical column capacity. Complexity: O(1).
func (t *Table) MaxCols() int { return t.maxCols }

// indexOf computes the physical offset of a logical (row, col) or returns
// ErrOutOfRange. Public methods wrap the sentinel with their own context.
func (t *Table) indexOf(row, col int) (int, error) {
	if row < 0 || row >= t.rows {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= t.cols {
		return 0, ErrOutOfRange
	}

	// Row-major offset over the physical stride.
	return row*t.maxCols + col, nil
}

// At returns the cell at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (t *Table) At(row, col int) (Cell, error) {
	off, err := t.indexOf(row, col)
	if err != nil {
		return Cell{}, tableErrorf(ctxAt, row, col, err)
	}

	return t.cells[off], nil
}

// Set stores c at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (t *Table) Set(row, col int, c Cell) error {
	off, err := t.indexOf(row, col)
	if err != nil {
		return tableErrorf(ctxSet, row, col, err)
	}
	t.cells[off] = c

	return nil
}

// Row returns logical row i as a slice sharing the table's storage.
// MAIN DESCRIPTION:
//   - No-copy view for hot loops: writes through the slice mutate the table.
//
// Behavior highlights:
//   - len(slice) == Cols(); the slice is valid until the next Reset.
//
// Errors:
//   - ErrOutOfRange when i is outside the logical view.
//
// Complexity:
//   - Time O(1), Space O(1).
func (t *Table) Row(i int) ([]Cell, error) {
	if i < 0 || i >= t.rows {
		return nil, tableErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	start := i * t.maxCols

	return t.cells[start : start+t.cols : start+t.cols], nil
}

// String renders the logical view's scores row by row for diagnostics.
// Not for hot paths.
func (t *Table) String() string {
	var sb strings.Builder
	for i := 0; i < t.rows; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < t.cols; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", t.cells[i*t.maxCols+j].Score)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
