package align

import (
	"fmt"

	"github.com/katalvlaran/seqalign/matrix"
)

// Similarity scores aligning symbol i of the first sequence with symbol j of
// the second. Implementations must be deterministic and free of side effects
// for 0 <= i < len1 and 0 <= j < len2; the engine may call them any number of
// times and in any order.
type Similarity func(i, j int) float64

// GapCost returns the (positive) cost of a contiguous gap run of length n >= 1.
// It may be linear, affine or any other deterministic function; the engine
// relies on nothing but determinism. The cost is subtracted from the score.
type GapCost func(n int) float64

// Affine is the gap cost Open + (n-1)*Extend for n > 0.
type Affine struct {
	Open   float64
	Extend float64
}

// Cost implements GapCost. Non-positive n costs nothing.
func (g Affine) Cost(n int) float64 {
	if n <= 0 {
		return 0
	}

	return g.Open + float64(n-1)*g.Extend
}

// Variant names the recurrence an alignment was computed with.
type Variant uint8

const (
	// VariantNone is the zero Variant; no alignment has been computed.
	VariantNone Variant = iota
	// VariantNeedlemanWunsch is global alignment with a linear gap cost.
	VariantNeedlemanWunsch
	// VariantSmithWaterman is local alignment with a linear gap cost.
	VariantSmithWaterman
	// VariantWatermanSmithBeyer is local alignment with an arbitrary gap cost.
	VariantWatermanSmithBeyer
	// VariantWatermanSmithBeyerGlobal is global alignment with an arbitrary gap cost.
	VariantWatermanSmithBeyerGlobal
	// VariantGotoh is local alignment with an affine gap cost in O(n·m).
	VariantGotoh
	// VariantGotohGlobal is global alignment with an affine gap cost in O(n·m).
	VariantGotohGlobal
)

var variantNames = [...]string{
	VariantNone:                     "none",
	VariantNeedlemanWunsch:          "needleman-wunsch",
	VariantSmithWaterman:            "smith-waterman",
	VariantWatermanSmithBeyer:       "waterman-smith-beyer",
	VariantWatermanSmithBeyerGlobal: "waterman-smith-beyer-global",
	VariantGotoh:                    "gotoh",
	VariantGotohGlobal:              "gotoh-global",
}

// String returns the kebab-case name of v.
func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}

	return fmt.Sprintf("variant(%d)", uint8(v))
}

// Local reports whether v clips scores at zero and may end anywhere.
func (v Variant) Local() bool {
	return v == VariantSmithWaterman || v == VariantWatermanSmithBeyer || v == VariantGotoh
}

// ParseVariant returns the Variant whose String() equals name.
func ParseVariant(name string) (Variant, error) {
	for v := VariantNeedlemanWunsch; int(v) < len(variantNames); v++ {
		if variantNames[v] == name {
			return v, nil
		}
	}

	return VariantNone, fmt.Errorf("align: unknown variant %q", name)
}

// Coord is a DP matrix coordinate; cell (I, J) covers the first I symbols of
// the first sequence and the first J symbols of the second.
type Coord struct {
	I, J int
}

// Step is one traceback transition, in forward order. (I, J) is the matrix
// cell the step leaves from; Len is 1 for a Diagonal step and the run length
// for a gap step.
type Step struct {
	Move matrix.Origin
	I, J int
	Len  int
}

// Gap marks the missing side of a gap column.
const Gap = -1

// Column is one aligned column: symbol indices into both sequences, with
// Gap on the side that carries a gap.
type Column struct {
	I, J int
}

// Path is an ordered list of aligned columns.
type Path []Column

// Alignment is the result of one alignment call.
//   - Score is the optimal score.
//   - Start and End delimit the aligned window in matrix coordinates; for
//     global variants they are (0,0) and (Len1,Len2).
//   - Steps is the traceback from Start to End.
type Alignment struct {
	Variant    Variant
	Score      float64
	Len1, Len2 int
	Start, End Coord
	Steps      []Step
}

// Columns expands Steps into the columns of the aligned window.
func (al Alignment) Columns() Path {
	cols := make(Path, 0, al.End.I-al.Start.I+al.End.J-al.Start.J)
	for _, st := range al.Steps {
		switch st.Move {
		case matrix.Diagonal:
			cols = append(cols, Column{I: st.I, J: st.J})
		case matrix.Vertical:
			for q := 0; q < st.Len; q++ {
				cols = append(cols, Column{I: st.I + q, J: Gap})
			}
		case matrix.Horizontal:
			for q := 0; q < st.Len; q++ {
				cols = append(cols, Column{I: Gap, J: st.J + q})
			}
		}
	}

	return cols
}

// Span returns the columns covering both full sequences: the unaligned
// prefixes (second sequence first), the aligned window, then the unaligned
// suffixes (second sequence first). For global alignments Span equals Columns.
func (al Alignment) Span() Path {
	cols := make(Path, 0, al.Len1+al.Len2)
	for j := 0; j < al.Start.J; j++ {
		cols = append(cols, Column{I: Gap, J: j})
	}
	for i := 0; i < al.Start.I; i++ {
		cols = append(cols, Column{I: i, J: Gap})
	}
	cols = append(cols, al.Columns()...)
	for j := al.End.J; j < al.Len2; j++ {
		cols = append(cols, Column{I: Gap, J: j})
	}
	for i := al.End.I; i < al.Len1; i++ {
		cols = append(cols, Column{I: i, J: Gap})
	}

	return cols
}
