package align_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/seqalign/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	propRounds = 60
	propMaxLen = 24
	dnaSymbols = "ACGT"
)

// run dispatches one variant with integer-valued scoring so that fast paths
// and replays can be compared exactly.
func run(t *testing.T, a *align.Aligner, v align.Variant, s, u string, gap align.Affine) {
	t.Helper()
	sim := dnaSim(s, u)
	var err error
	switch v {
	case align.VariantNeedlemanWunsch:
		err = a.NeedlemanWunsch(sim, gap.Extend, len(s), len(u))
	case align.VariantSmithWaterman:
		err = a.SmithWaterman(sim, gap.Extend, len(s), len(u))
	case align.VariantWatermanSmithBeyer:
		err = a.WatermanSmithBeyer(sim, gap.Cost, len(s), len(u))
	case align.VariantWatermanSmithBeyerGlobal:
		err = a.WatermanSmithBeyerGlobal(sim, gap.Cost, len(s), len(u))
	case align.VariantGotoh:
		err = a.Gotoh(sim, gap, len(s), len(u))
	case align.VariantGotohGlobal:
		err = a.GotohGlobal(sim, gap, len(s), len(u))
	}
	require.NoError(t, err, "%s on %q / %q", v, s, u)
}

// gapFor returns the gap function a variant actually charges.
func gapFor(v align.Variant, gap align.Affine) align.GapCost {
	if v == align.VariantNeedlemanWunsch || v == align.VariantSmithWaterman {
		return linear(gap.Extend)
	}

	return gap.Cost
}

var allVariants = []align.Variant{
	align.VariantNeedlemanWunsch,
	align.VariantSmithWaterman,
	align.VariantWatermanSmithBeyer,
	align.VariantWatermanSmithBeyerGlobal,
	align.VariantGotoh,
	align.VariantGotohGlobal,
}

// TestProperty_ReplayAndRoundTrip checks, for every variant on random inputs:
//   - the steps replay to the reported score;
//   - removing gap runes from the rendered lines gives back s and t;
//   - local scores are never negative and global windows span both inputs.
func TestProperty_ReplayAndRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	a, err := align.NewAligner(propMaxLen, propMaxLen)
	require.NoError(t, err)
	gap := align.Affine{Open: 6, Extend: 2}

	for round := 0; round < propRounds; round++ {
		s := randomSeq(rng, dnaSymbols, rng.IntN(propMaxLen+1))
		u := randomSeq(rng, dnaSymbols, rng.IntN(propMaxLen+1))
		for _, v := range allVariants {
			run(t, a, v, s, u, gap)
			al, err := a.Alignment()
			require.NoError(t, err)

			assert.Equal(t, al.Score, replay(al, dnaSim(s, u), gapFor(v, gap)), "%s replay on %q / %q", v, s, u)

			text, err := a.PrettyPrinted(s, u)
			require.NoError(t, err)
			top, mid, bottom := lines(text)
			assert.Equal(t, s, stripGaps(top), "%s top on %q / %q", v, s, u)
			assert.Equal(t, u, stripGaps(bottom), "%s bottom on %q / %q", v, s, u)
			assert.Equal(t, len(top), len(mid))
			assert.Equal(t, len(top), len(bottom))

			if v.Local() {
				assert.GreaterOrEqual(t, al.Score, 0.0)
			} else {
				assert.Equal(t, align.Coord{}, al.Start)
				assert.Equal(t, align.Coord{I: len(s), J: len(u)}, al.End)
			}
		}
	}
}

// TestProperty_GotohMatchesWatermanSmithBeyer compares the affine fast path
// with the general recurrence: same score, same window, same steps.
func TestProperty_GotohMatchesWatermanSmithBeyer(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	a, err := align.NewAligner(propMaxLen, propMaxLen)
	require.NoError(t, err)

	for _, gap := range []align.Affine{{Open: 5, Extend: 1}, {Open: 3, Extend: 3}, {Open: 8, Extend: 2}} {
		for round := 0; round < propRounds; round++ {
			s := randomSeq(rng, dnaSymbols, rng.IntN(propMaxLen+1))
			u := randomSeq(rng, dnaSymbols, rng.IntN(propMaxLen+1))
			for _, pair := range [][2]align.Variant{
				{align.VariantWatermanSmithBeyer, align.VariantGotoh},
				{align.VariantWatermanSmithBeyerGlobal, align.VariantGotohGlobal},
			} {
				run(t, a, pair[0], s, u, gap)
				slow, _ := a.Alignment()
				run(t, a, pair[1], s, u, gap)
				fast, _ := a.Alignment()

				assert.Equal(t, slow.Score, fast.Score, "%v score on %q / %q", gap, s, u)
				assert.Equal(t, slow.Start, fast.Start, "%v start on %q / %q", gap, s, u)
				assert.Equal(t, slow.End, fast.End, "%v end on %q / %q", gap, s, u)
				assert.Equal(t, slow.Steps, fast.Steps, "%v steps on %q / %q", gap, s, u)
			}
		}
	}
}

// TestProperty_LinearRunsMatchUnitSteps checks that the general recurrence
// with a linear gap cost renders exactly what the per-unit variants render.
func TestProperty_LinearRunsMatchUnitSteps(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 17))
	a, err := align.NewAligner(propMaxLen, propMaxLen)
	require.NoError(t, err)
	gap := align.Affine{Open: 3, Extend: 3}

	for round := 0; round < propRounds; round++ {
		s := randomSeq(rng, dnaSymbols, rng.IntN(propMaxLen+1))
		u := randomSeq(rng, dnaSymbols, rng.IntN(propMaxLen+1))
		for _, pair := range [][2]align.Variant{
			{align.VariantNeedlemanWunsch, align.VariantWatermanSmithBeyerGlobal},
			{align.VariantSmithWaterman, align.VariantWatermanSmithBeyer},
		} {
			run(t, a, pair[0], s, u, gap)
			unitScore, _ := a.Score()
			unitText, _ := a.PrettyPrinted(s, u)
			run(t, a, pair[1], s, u, gap)
			runScore, _ := a.Score()
			runText, _ := a.PrettyPrinted(s, u)

			assert.Equal(t, unitScore, runScore, "%s on %q / %q", pair[0], s, u)
			assert.Equal(t, unitText, runText, "%s on %q / %q", pair[0], s, u)
		}
	}
}

// TestProperty_GlobalOptimality brute-forces tiny global alignments.
func TestProperty_GlobalOptimality(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 23))
	a, err := align.NewAligner(6, 6)
	require.NoError(t, err)
	gap := align.Affine{Open: 4, Extend: 1}

	for round := 0; round < propRounds; round++ {
		s := randomSeq(rng, dnaSymbols, rng.IntN(6))
		u := randomSeq(rng, dnaSymbols, rng.IntN(6))
		sim := dnaSim(s, u)

		run(t, a, align.VariantWatermanSmithBeyerGlobal, s, u, gap)
		score, _ := a.Score()
		assert.Equal(t, bestGlobal(sim, gap.Cost, len(s), len(u), 0, 0, 0), score, "%q / %q", s, u)
	}
}

// bestGlobal enumerates every sequence of diagonal steps and maximal gap runs.
// last is 0 after a diagonal step (or at the start), 1 after a vertical run
// and 2 after a horizontal run; consecutive runs in the same direction would
// just be one longer run.
func bestGlobal(sim align.Similarity, gap align.GapCost, n, m, i, j, last int) float64 {
	if i == n && j == m {
		return 0
	}
	best := -1e18
	if i < n && j < m {
		best = max(best, sim(i, j)+bestGlobal(sim, gap, n, m, i+1, j+1, 0))
	}
	if last != 1 {
		for k := 1; i+k <= n; k++ {
			best = max(best, -gap(k)+bestGlobal(sim, gap, n, m, i+k, j, 1))
		}
	}
	if last != 2 {
		for k := 1; j+k <= m; k++ {
			best = max(best, -gap(k)+bestGlobal(sim, gap, n, m, i, j+k, 2))
		}
	}

	return best
}
