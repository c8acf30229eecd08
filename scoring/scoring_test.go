package scoring_test

import (
	"testing"

	"github.com/katalvlaran/seqalign/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDNAFull spot-checks the nucleotide table, including ambiguity codes.
func TestDNAFull(t *testing.T) {
	m := scoring.DNAFull()
	require.Equal(t, scoring.DNAFullAlphabet, m.Alphabet())

	cases := []struct {
		a, b rune
		want float64
	}{
		{'A', 'A', 5},  // identity
		{'A', 'T', -4}, // mismatch
		{'A', 'W', 1},  // W = A|T
		{'S', 'G', 1},  // S = C|G
		{'N', 'N', -1}, // fully ambiguous
		{'A', 'N', -2},
		{'B', 'A', -4}, // B = not A
	}
	for _, tc := range cases {
		got, err := m.Score(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%c/%c", tc.a, tc.b)
	}

	_, err := m.Score('A', 'X')
	assert.ErrorIs(t, err, scoring.ErrUnknownSymbol)
}

// TestDNAFullSymmetric verifies that the table scores a/b like b/a.
func TestDNAFullSymmetric(t *testing.T) {
	m := scoring.DNAFull()
	for _, a := range scoring.DNAFullAlphabet {
		for _, b := range scoring.DNAFullAlphabet {
			ab, _ := m.Score(a, b)
			ba, _ := m.Score(b, a)
			assert.Equal(t, ab, ba, "%c/%c", a, b)
		}
	}
}

// TestSubstitutionSimilarity binds a table to two sequences and checks that
// unknown symbols are reported before any scoring happens.
func TestSubstitutionSimilarity(t *testing.T) {
	m := scoring.DNAFull()

	sim, err := m.Similarity("ACGT", "TGN")
	require.NoError(t, err)
	assert.Equal(t, -4.0, sim(0, 0)) // A/T
	assert.Equal(t, 5.0, sim(2, 1))  // G/G
	assert.Equal(t, -2.0, sim(3, 2)) // T/N

	_, err = m.Similarity("ACxT", "A")
	require.ErrorIs(t, err, scoring.ErrUnknownSymbol)
	assert.Contains(t, err.Error(), "first sequence")

	_, err = m.Similarity("A", "acgt")
	require.ErrorIs(t, err, scoring.ErrUnknownSymbol)
	assert.Contains(t, err.Error(), "second sequence")
}

// TestNewSubstitutionErrors covers malformed tables.
func TestNewSubstitutionErrors(t *testing.T) {
	_, err := scoring.NewSubstitution("AB", [][]float64{{1, 0}})
	assert.Error(t, err) // missing row

	_, err = scoring.NewSubstitution("AB", [][]float64{{1, 0}, {0}})
	assert.Error(t, err) // short row

	_, err = scoring.NewSubstitution("AA", [][]float64{{1, 0}, {0, 1}})
	assert.Error(t, err) // duplicate symbol

	m, err := scoring.NewSubstitution("αβ", [][]float64{{2, -1}, {-3, 2}})
	require.NoError(t, err)
	got, err := m.Score('β', 'α')
	require.NoError(t, err)
	assert.Equal(t, -3.0, got) // rows index the first sequence
}

// TestBinary scores runes, not bytes.
func TestBinary(t *testing.T) {
	sim := scoring.Binary("añb", "ñ", 2, -1)
	assert.Equal(t, -1.0, sim(0, 0))
	assert.Equal(t, 2.0, sim(1, 0))
	assert.Equal(t, -1.0, sim(2, 0))
}

// TestGapCosts checks the three gap-cost shapes.
func TestGapCosts(t *testing.T) {
	lin := scoring.Linear(2)
	assert.Equal(t, 2.0, lin(1))
	assert.Equal(t, 10.0, lin(5))

	aff := scoring.Affine(5, 1)
	assert.Equal(t, 5.0, aff.Cost(1))
	assert.Equal(t, 8.0, aff.Cost(4))
	assert.Equal(t, 0.0, aff.Cost(0))

	exp := scoring.Exponential(1.25)
	assert.Equal(t, 1.25, exp(1))
	assert.Equal(t, 1.5625, exp(2))
}
