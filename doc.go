// Package seqalign is a small engine for optimal pairwise sequence alignment:
// global and local, with linear, affine or arbitrary gap costs, and a
// three-line text rendering of the result.
//
// 🚀 What is in the box?
//
//	• Needleman-Wunsch (global) and Smith-Waterman (local), per-unit gaps
//	• Waterman-Smith-Beyer, local and global, for any gap-cost function
//	• Gotoh fast paths for affine gaps, identical to Waterman-Smith-Beyer
//	• Deterministic tie-breaking, so results are reproducible across runs
//	• A preallocated DP table reused by every call (no per-call matrix growth)
//
// Packages:
//
//	align/             Aligner, recurrences, traceback, rendering
//	matrix/            fixed-capacity DP table with safe accessors
//	scoring/           DNAfull and custom substitution tables, gap-cost shapes
//	internal/scenario/ YAML job files and a sequential job runner
//	cmd/seqalign/      command-line front end for job files
//	examples/          runnable demos
//
// Quick example:
//
//	s, t := "CHOCOLATEISTHEANSWER", "LATETHAW"
//	a, _ := align.NewAligner(20, 20)
//	_ = a.WatermanSmithBeyer(scoring.Binary(s, t, 1, -1), scoring.Exponential(1.25), len(s), len(t))
//	text, _ := a.PrettyPrinted(s, t)
//	fmt.Print(text)
//
//	CHOCOLATEISTH--EANSWER
//	     ||||  ||
//	-----LATE--THAW-------
//
// The engine never looks at symbols: callers supply a Similarity(i, j) over
// their own sequences and a GapCost(n), so any alphabet works.
package seqalign
