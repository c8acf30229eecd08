package scoring

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seqalign/align"
)

// ErrUnknownSymbol indicates a sequence symbol missing from a substitution alphabet.
var ErrUnknownSymbol = errors.New("scoring: symbol not in alphabet")

// Binary returns a similarity scoring match for identical runes of s and t and
// mismatch otherwise.
func Binary(s, t string, match, mismatch float64) align.Similarity {
	rs, rt := []rune(s), []rune(t)

	return func(i, j int) float64 {
		if rs[i] == rt[j] {
			return match
		}

		return mismatch
	}
}

// Substitution is a symmetric-or-not score table over a fixed alphabet.
// Scores[a][b] is the score of alphabet[a] in the first sequence against
// alphabet[b] in the second.
type Substitution struct {
	alphabet []rune
	index    map[rune]int
	scores   [][]float64
}

// NewSubstitution builds a table. scores must be len(alphabet)×len(alphabet)
// and alphabet must not repeat a symbol.
func NewSubstitution(alphabet string, scores [][]float64) (*Substitution, error) {
	runes := []rune(alphabet)
	if len(scores) != len(runes) {
		return nil, fmt.Errorf("scoring: %d score rows for %d symbols", len(scores), len(runes))
	}
	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, dup := index[r]; dup {
			return nil, fmt.Errorf("scoring: duplicate symbol %q", r)
		}
		if len(scores[i]) != len(runes) {
			return nil, fmt.Errorf("scoring: row %q has %d scores, want %d", r, len(scores[i]), len(runes))
		}
		index[r] = i
	}

	return &Substitution{alphabet: runes, index: index, scores: scores}, nil
}

// Alphabet returns the table's symbols in row order.
func (m *Substitution) Alphabet() string { return string(m.alphabet) }

// Score returns the score of a against b.
func (m *Substitution) Score(a, b rune) (float64, error) {
	ia, ok := m.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, a)
	}
	ib, ok := m.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, b)
	}

	return m.scores[ia][ib], nil
}

// Similarity binds the table to s and t. Every symbol is resolved here, so
// an unknown symbol is reported once, before any alignment runs.
func (m *Substitution) Similarity(s, t string) (align.Similarity, error) {
	is, err := m.encode(s)
	if err != nil {
		return nil, fmt.Errorf("first sequence: %w", err)
	}
	it, err := m.encode(t)
	if err != nil {
		return nil, fmt.Errorf("second sequence: %w", err)
	}

	return func(i, j int) float64 {
		return m.scores[is[i]][it[j]]
	}, nil
}

func (m *Substitution) encode(s string) ([]int, error) {
	out := make([]int, 0, len(s))
	for pos, r := range []rune(s) {
		k, ok := m.index[r]
		if !ok {
			return nil, fmt.Errorf("%w: %q at %d", ErrUnknownSymbol, r, pos)
		}
		out = append(out, k)
	}

	return out, nil
}
