package align

// fillLinear fills the table for Needleman-Wunsch (local=false) or
// Smith-Waterman (local=true) with a per-unit gap cost:
//
//	H[i][j] = max( [0 if local],
//	               H[i-1][j-1] + sim(i-1, j-1),
//	               H[i-1][j]   - gap,
//	               H[i][j-1]   - gap )
//
// It returns the cell the traceback starts from.
// Complexity: O(len1·len2).
func (a *Aligner) fillLinear(sim Similarity, gap float64, len1, len2 int, local bool) Coord {
	a.initBorders(len1, len2, local, false, func(int) float64 { return gap })

	var best tracker
	for i := 1; i <= len1; i++ {
		up, cur := a.rows[i-1], a.rows[i]
		for j := 1; j <= len2; j++ {
			c := pick(
				up[j-1].Score+sim(i-1, j-1),
				gapRun{score: up[j].Score - gap, n: 1},
				gapRun{score: cur[j-1].Score - gap, n: 1},
				local)
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
