// Package scenario describes alignment jobs in YAML and runs them against a
// single, suitably sized align.Aligner.
//
// A job file looks like:
//
//	jobs:
//	  - name: wikipedia-affine
//	    variant: waterman-smith-beyer
//	    s: TACGGGCCCGCTAC
//	    t: TAGCCCTATCGGTCA
//	    similarity: {kind: dnafull}
//	    gap: {kind: affine, open: 5, extend: 1}
//	    expect_score: 27
//
// Similarity kinds: binary (match, mismatch), dnafull.
// Gap kinds: linear (cost), affine (open, extend), exponential (base).
package scenario
