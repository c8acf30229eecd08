package align

import (
	"fmt"

	"github.com/katalvlaran/seqalign/matrix"
)

// traceback walks stored origins from end back to the alignment start.
//
// Transitions:
//   - Diagonal     → (i-1, j-1)
//   - Vertical k   → (i-k, j)
//   - Horizontal k → (i, j-k)
//   - Start        → halt
//
// Global alignments must halt exactly at (0,0). Every hop is bounds-checked
// and the walk is capped at maxHops = len1+len2 transitions; a violation
// means a broken fill and yields ErrInternalIndex.
// The returned steps are in forward order.
func (a *Aligner) traceback(end Coord, local bool, maxHops int) (Coord, []Step, error) {
	var steps []Step
	i, j := end.I, end.J
	for hops := 0; ; hops++ {
		if i < 0 || i >= len(a.rows) || j < 0 || j >= len(a.rows[i]) {
			return Coord{}, nil, fmt.Errorf("%w: traceback left the matrix at (%d,%d)", ErrInternalIndex, i, j)
		}
		if hops > maxHops {
			return Coord{}, nil, fmt.Errorf("%w: traceback exceeded %d steps", ErrInternalIndex, maxHops)
		}

		c := a.rows[i][j]
		if c.Origin == matrix.Start {
			if !local && (i != 0 || j != 0) {
				return Coord{}, nil, fmt.Errorf("%w: global traceback stopped at (%d,%d)", ErrInternalIndex, i, j)
			}
			break
		}

		var di, dj int
		switch c.Origin {
		case matrix.Diagonal:
			di, dj = 1, 1
		case matrix.Vertical:
			di = c.Len
		case matrix.Horizontal:
			dj = c.Len
		default:
			return Coord{}, nil, fmt.Errorf("%w: cell (%d,%d) has origin %s", ErrInternalIndex, i, j, c.Origin)
		}
		if di+dj < 1 || di > i || dj > j {
			return Coord{}, nil, fmt.Errorf("%w: cell (%d,%d) jumps by (%d,%d)", ErrInternalIndex, i, j, di, dj)
		}
		i, j = i-di, j-dj
		steps = append(steps, Step{Move: c.Origin, I: i, J: j, Len: max(di, dj)})
	}

	for l, r := 0, len(steps)-1; l < r; l, r = l+1, r-1 {
		steps[l], steps[r] = steps[r], steps[l]
	}

	return Coord{I: i, J: j}, steps, nil
}
