package scoring

import (
	"math"

	"github.com/katalvlaran/seqalign/align"
)

// Linear returns the gap cost n·g.
func Linear(g float64) align.GapCost {
	return func(n int) float64 { return float64(n) * g }
}

// Affine returns the gap cost open + (n-1)·extension as an align.Affine,
// usable both with the Gotoh fast path and, via its Cost method, with
// WatermanSmithBeyer.
func Affine(open, extension float64) align.Affine {
	return align.Affine{Open: open, Extend: extension}
}

// Exponential returns the gap cost base^n.
func Exponential(base float64) align.GapCost {
	return func(n int) float64 { return math.Pow(base, float64(n)) }
}
