// Package align computes optimal pairwise alignments of two symbol sequences
// under caller-supplied scoring, and renders them as aligned text.
//
// 🚀 Variants:
//
//   - NeedlemanWunsch: global, per-unit (linear) gap cost. O(n·m).
//   - SmithWaterman: local, per-unit gap cost, scores clipped at 0. O(n·m).
//   - WatermanSmithBeyer / WatermanSmithBeyerGlobal: arbitrary gap-cost
//     function of the run length. O(n·m·(n+m)).
//   - Gotoh / GotohGlobal: affine gap cost (Open + (n-1)·Extend) in O(n·m);
//     same result as the Waterman-Smith-Beyer variants with Affine.Cost.
//
// ✨ Scoring model:
//
//	Similarity func(i, j int) float64 // score of s[i] against t[j]
//	GapCost    func(n int) float64    // cost of a gap run of length n ≥ 1
//
// Both must be deterministic and side-effect free. The engine never inspects
// symbols itself, so any sequence type works as long as the caller's
// Similarity indexes it.
//
// Determinism:
//
//   - Equal candidates are resolved diagonal > vertical > horizontal, and
//     among gap runs the shortest wins.
//   - Local alignments end at the first row-major cell holding the maximum
//     score; cells whose best candidate is ≤ 0 become traceback terminals.
//   - Gap costs apply uniformly to leading, internal and trailing gaps.
//
// ⚙️ Usage:
//
//	a, err := align.NewAligner(20, 20)
//	if err != nil { ... }
//	sim := func(i, j int) float64 { if s[i] == t[j] { return 1 }; return -1 }
//	if err := a.NeedlemanWunsch(sim, 2, len(s), len(t)); err != nil { ... }
//	score, _ := a.Score()
//	text, _ := a.PrettyPrinted(s, t)
//
// The Aligner allocates its (maxLen1+1)×(maxLen2+1) table once and reuses it
// for every call; results stay valid until the next call on the same Aligner.
// Use one Aligner per goroutine.
package align
