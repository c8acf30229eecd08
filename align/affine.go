package align

import "math"

// fillAffine is the Gotoh form of fillGeneral for gap.Cost. A gap run ending
// at (i, j) either opens at the neighbouring cell or extends the best run
// ending there:
//
//	V[i][j] = max( H[i-1][j] - Open, V[i-1][j] - Extend )
//	E[i][j] = max( H[i][j-1] - Open, E[i][j-1] - Extend )
//
// Opening wins ties, which reproduces the smallest-k preference of the
// generalized scan. V is kept per column in a.vgap, E as a scalar per row.
// Complexity: O(len1·len2) time, O(len2) extra space (preallocated).
func (a *Aligner) fillAffine(sim Similarity, gap Affine, len1, len2 int, local bool) Coord {
	a.initBorders(len1, len2, local, true, gap.Cost)

	negInf := math.Inf(-1)
	vgap := a.vgap[:len2+1]
	for j := range vgap {
		vgap[j] = gapRun{score: negInf}
	}

	var best tracker
	for i := 1; i <= len1; i++ {
		up, cur := a.rows[i-1], a.rows[i]
		horiz := gapRun{score: negInf}
		for j := 1; j <= len2; j++ {
			vgap[j] = extend(vgap[j], up[j].Score-gap.Open, gap.Extend)
			horiz = extend(horiz, cur[j-1].Score-gap.Open, gap.Extend)

			c := pick(up[j-1].Score+sim(i-1, j-1), vgap[j], horiz, local)
			cur[j] = c
			if local {
				best.offer(i, j, c.Score)
			}
		}
	}
	if local {
		return best.at
	}

	return Coord{I: len1, J: len2}
}

// extend returns the better of opening a new run (score open) and extending
// run by one more symbol; opening wins ties.
func extend(run gapRun, open, ext float64) gapRun {
	if longer := run.score - ext; longer > open {
		return gapRun{score: longer, n: run.n + 1}
	}

	return gapRun{score: open, n: 1}
}
