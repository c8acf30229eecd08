package align

// fillGeneral fills the table for Waterman-Smith-Beyer:
//
//	H[i][j] = max( [0 if local],
//	               H[i-1][j-1] + sim(i-1, j-1),
//	               max_{k=1..i} H[i-k][j] - gap(k),
//	               max_{k=1..j} H[i][j-k] - gap(k) )
//
// gap is an arbitrary function of the run length, so both inner maxima scan
// every k. The winning k is stored in the cell so the traceback can jump a
// whole run at once; among equal candidates the smallest k wins.
// Complexity: O(len1·len2·(len1+len2)) time, O(1) extra space.
func (a *Aligner) fillGeneral(sim Similarity, gap GapCost, len1, len2 int, local bool) Coord {
	a.initBorders(len1, len2, local, true, gap)

	var best tracker
	for i := 1; i <= len1; i++ {
		cur := a.rows[i]
		for j := 1; j <= len2; j++ {
			vert := gapRun{score: a.rows[i-1][j].Score - gap(1), n: 1}
			for k := 2; k <= i; k++ {
				if s := a.rows[i-k][j].Score - gap(k); s > vert.score {
					vert = gapRun{score: s, n: k}
				}
			}
			horiz := gapRun{score: cur[j-1].Score - gap(1), n: 1}
			for k := 2; k <= j; k++ {
				if s := cur[j-k].Score - gap(k); s > horiz.score {
					horiz = gapRun{score: s, n: k}
				}
			}

			c := pick(a.rows[i-1][j-1].Score+sim(i-1, j-1), vert, horiz, local)
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
