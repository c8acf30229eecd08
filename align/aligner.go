package align

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/seqalign/matrix"
)

// Aligner owns a preallocated DP table and the most recent alignment result.
//
// Lifecycle:
//
//	a, _ := align.NewAligner(maxLen1, maxLen2) // Empty
//	_ = a.SmithWaterman(sim, 1, n, m)          // Computed
//	score, _ := a.Score()
//
// Every alignment call resets the used part of the table and replaces the
// previous result; a failed call leaves the Aligner Empty. An Aligner is not
// safe for concurrent use.
type Aligner struct {
	maxLen1, maxLen2 int

	table *matrix.Table
	rows  [][]matrix.Cell // logical row views of table, rebuilt per call
	vgap  []gapRun        // per-column open vertical run (affine fast path)

	computed bool
	result   Alignment

	logger *slog.Logger
}

// gapRun is the best score of a gap run ending at the current cell and its length.
type gapRun struct {
	score float64
	n     int
}

// NewAligner preallocates a (maxLen1+1)×(maxLen2+1) table.
//
// Errors:
//   - ErrInvalidCapacity if either maximum is negative.
func NewAligner(maxLen1, maxLen2 int, opts ...Option) (*Aligner, error) {
	if maxLen1 < 0 || maxLen2 < 0 {
		return nil, fmt.Errorf("%w: got (%d, %d)", ErrInvalidCapacity, maxLen1, maxLen2)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	table, err := matrix.NewTable(maxLen1+1, maxLen2+1)
	if err != nil {
		return nil, fmt.Errorf("align: %w", err)
	}

	return &Aligner{
		maxLen1: maxLen1,
		maxLen2: maxLen2,
		table:   table,
		rows:    make([][]matrix.Cell, 0, maxLen1+1),
		vgap:    make([]gapRun, maxLen2+1),
		logger:  o.logger,
	}, nil
}

// MaxLengths returns the capacity fixed at construction.
func (a *Aligner) MaxLengths() (maxLen1, maxLen2 int) {
	return a.maxLen1, a.maxLen2
}

// NeedlemanWunsch computes the optimal global alignment with a per-unit gap
// cost. Ties prefer diagonal over vertical over horizontal.
func (a *Aligner) NeedlemanWunsch(sim Similarity, gap float64, len1, len2 int) error {
	if sim == nil {
		return a.fail(ErrNilScoring)
	}

	return a.run(VariantNeedlemanWunsch, len1, len2, func() (Coord, error) {
		return a.fillLinear(sim, gap, len1, len2, false), nil
	})
}

// SmithWaterman computes the optimal local alignment with a per-unit gap cost.
// The alignment ends at the first (row-major) cell holding the maximum score
// and starts where the traceback meets a cell clipped to zero.
func (a *Aligner) SmithWaterman(sim Similarity, gap float64, len1, len2 int) error {
	if sim == nil {
		return a.fail(ErrNilScoring)
	}

	return a.run(VariantSmithWaterman, len1, len2, func() (Coord, error) {
		return a.fillLinear(sim, gap, len1, len2, true), nil
	})
}

// WatermanSmithBeyer computes the optimal local alignment under an arbitrary
// gap-cost function in O(len1·len2·(len1+len2)).
func (a *Aligner) WatermanSmithBeyer(sim Similarity, gap GapCost, len1, len2 int) error {
	if sim == nil || gap == nil {
		return a.fail(ErrNilScoring)
	}

	return a.run(VariantWatermanSmithBeyer, len1, len2, func() (Coord, error) {
		return a.fillGeneral(sim, gap, len1, len2, true), nil
	})
}

// WatermanSmithBeyerGlobal is the global form of WatermanSmithBeyer: no
// clipping, leading gaps charged as single runs, traceback from (len1, len2).
func (a *Aligner) WatermanSmithBeyerGlobal(sim Similarity, gap GapCost, len1, len2 int) error {
	if sim == nil || gap == nil {
		return a.fail(ErrNilScoring)
	}

	return a.run(VariantWatermanSmithBeyerGlobal, len1, len2, func() (Coord, error) {
		return a.fillGeneral(sim, gap, len1, len2, false), nil
	})
}

// Gotoh computes the same local alignment as WatermanSmithBeyer with
// gap.Cost, in O(len1·len2). Scores, origins and run lengths are identical
// under exact arithmetic (e.g. integer-valued scores).
func (a *Aligner) Gotoh(sim Similarity, gap Affine, len1, len2 int) error {
	if sim == nil {
		return a.fail(ErrNilScoring)
	}

	return a.run(VariantGotoh, len1, len2, func() (Coord, error) {
		return a.fillAffine(sim, gap, len1, len2, true), nil
	})
}

// GotohGlobal is the O(len1·len2) equivalent of WatermanSmithBeyerGlobal for
// affine gap costs.
func (a *Aligner) GotohGlobal(sim Similarity, gap Affine, len1, len2 int) error {
	if sim == nil {
		return a.fail(ErrNilScoring)
	}

	return a.run(VariantGotohGlobal, len1, len2, func() (Coord, error) {
		return a.fillAffine(sim, gap, len1, len2, false), nil
	})
}

// fail drops the previous result and returns err.
func (a *Aligner) fail(err error) error {
	a.computed = false
	a.result = Alignment{}

	return err
}

// run validates lengths, prepares the table, fills it and extracts the result.
func (a *Aligner) run(v Variant, len1, len2 int, fill func() (Coord, error)) error {
	_ = a.fail(nil)

	if len1 < 0 || len2 < 0 {
		return fmt.Errorf("%w: got (%d, %d)", ErrNegativeLength, len1, len2)
	}
	if len1 > a.maxLen1 || len2 > a.maxLen2 {
		return fmt.Errorf("%w: got (%d, %d), capacity (%d, %d)",
			ErrCapacityExceeded, len1, len2, a.maxLen1, a.maxLen2)
	}
	if err := a.table.Reset(len1+1, len2+1); err != nil {
		return fmt.Errorf("%w: %w", ErrInternalIndex, err)
	}
	a.rows = a.rows[:0]
	for i := 0; i <= len1; i++ {
		row, err := a.table.Row(i)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInternalIndex, err)
		}
		a.rows = append(a.rows, row)
	}

	end, err := fill()
	if err != nil {
		return err
	}
	start, steps, err := a.traceback(end, v.Local(), len1+len2)
	if err != nil {
		return err
	}

	a.result = Alignment{
		Variant: v,
		Score:   a.rows[end.I][end.J].Score,
		Len1:    len1,
		Len2:    len2,
		Start:   start,
		End:     end,
		Steps:   steps,
	}
	a.computed = true
	a.logger.Debug("alignment computed",
		"variant", v.String(),
		"len1", len1,
		"len2", len2,
		"score", a.result.Score,
		"steps", len(steps))

	return nil
}

// Score returns the optimal score of the most recent alignment.
func (a *Aligner) Score() (float64, error) {
	if !a.computed {
		return 0, ErrInvalidState
	}

	return a.result.Score, nil
}

// Alignment returns the most recent result. The Steps slice is owned by the
// caller; later alignment calls do not modify it.
func (a *Aligner) Alignment() (Alignment, error) {
	if !a.computed {
		return Alignment{}, ErrInvalidState
	}

	return a.result, nil
}

// Path returns the aligned-window columns of the most recent result.
func (a *Aligner) Path() (Path, error) {
	if !a.computed {
		return nil, ErrInvalidState
	}

	return a.result.Columns(), nil
}

// PrettyPrinted renders the most recent result against the two sequences it
// was computed for. See Render.
func (a *Aligner) PrettyPrinted(s, t string, opts ...RenderOption) (string, error) {
	if !a.computed {
		return "", ErrInvalidState
	}

	return Render(a.result, s, t, opts...)
}

// initBorders writes row 0 and column 0.
//   - local: every border cell is a zero-score Start.
//   - global: border cells are gap runs from (0,0); with runs set they are one
//     run of length i (resp. j) costing gap(i), otherwise i unit gaps.
func (a *Aligner) initBorders(len1, len2 int, local, runs bool, gap GapCost) {
	a.rows[0][0] = matrix.Cell{Origin: matrix.Start}
	for i := 1; i <= len1; i++ {
		switch {
		case local:
			a.rows[i][0] = matrix.Cell{Origin: matrix.Start}
		case runs:
			a.rows[i][0] = matrix.Cell{Score: -gap(i), Origin: matrix.Vertical, Len: i}
		default:
			a.rows[i][0] = matrix.Cell{Score: a.rows[i-1][0].Score - gap(1), Origin: matrix.Vertical, Len: 1}
		}
	}
	for j := 1; j <= len2; j++ {
		switch {
		case local:
			a.rows[0][j] = matrix.Cell{Origin: matrix.Start}
		case runs:
			a.rows[0][j] = matrix.Cell{Score: -gap(j), Origin: matrix.Horizontal, Len: j}
		default:
			a.rows[0][j] = matrix.Cell{Score: a.rows[0][j-1].Score - gap(1), Origin: matrix.Horizontal, Len: 1}
		}
	}
}

// pick applies the shared tie-break: diagonal, then vertical, then
// horizontal, each replacing the incumbent only when strictly better. Local
// variants turn any non-positive winner into a zero-score Start.
func pick(diag float64, vert gapRun, horiz gapRun, local bool) matrix.Cell {
	c := matrix.Cell{Score: diag, Origin: matrix.Diagonal, Len: 1}
	if vert.score > c.Score {
		c = matrix.Cell{Score: vert.score, Origin: matrix.Vertical, Len: vert.n}
	}
	if horiz.score > c.Score {
		c = matrix.Cell{Score: horiz.score, Origin: matrix.Horizontal, Len: horiz.n}
	}
	if local && !(c.Score > 0) {
		c = matrix.Cell{Origin: matrix.Start}
	}

	return c
}

// tracker remembers the first cell, in row-major order, holding the maximum
// score. It starts at (0,0) with score 0, so a local alignment without any
// positive cell is empty and ends at the origin.
type tracker struct {
	at    Coord
	score float64
}

func (t *tracker) offer(i, j int, score float64) {
	if score > t.score {
		t.at, t.score = Coord{I: i, J: j}, score
	}
}
