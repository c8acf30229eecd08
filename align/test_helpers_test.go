package align_test

import (
	"math/rand/v2"
	"strings"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/matrix"
)

// normalize trims every line and drops blank ones, so expected text can be
// written as an indented raw string.
func normalize(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}

	return strings.Join(out, "\n")
}

// binary is a ±score similarity over two strings.
func binary(s, t string, match, mismatch float64) align.Similarity {
	return func(i, j int) float64 {
		if s[i] == t[j] {
			return match
		}
		return mismatch
	}
}

func linear(g float64) align.GapCost {
	return func(n int) float64 { return float64(n) * g }
}

// replay recomputes an alignment's score from its steps.
func replay(al align.Alignment, sim align.Similarity, gap align.GapCost) float64 {
	var total float64
	for _, st := range al.Steps {
		switch st.Move {
		case matrix.Diagonal:
			total += sim(st.I, st.J)
		case matrix.Vertical, matrix.Horizontal:
			total -= gap(st.Len)
		}
	}

	return total
}

// lines splits rendered text into its three lines.
func lines(text string) (top, mid, bottom string) {
	parts := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(parts) != 3 {
		return "", "", ""
	}

	return parts[0], parts[1], parts[2]
}

func stripGaps(s string) string {
	return strings.ReplaceAll(s, string(align.DefaultGapRune), "")
}

// randomSeq draws n symbols from alphabet.
func randomSeq(rng *rand.Rand, alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.IntN(len(alphabet))]
	}

	return string(b)
}

// dnaSim is a small integer-valued nucleotide similarity with distinct
// transition/transversion scores, so ties are common but not universal.
func dnaSim(s, t string) align.Similarity {
	return func(i, j int) float64 {
		a, b := s[i], t[j]
		switch {
		case a == b:
			return 5
		case (a == 'A' && b == 'G') || (a == 'G' && b == 'A') || (a == 'C' && b == 'T') || (a == 'T' && b == 'C'):
			return -1
		default:
			return -4
		}
	}
}
