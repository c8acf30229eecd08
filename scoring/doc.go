// Package scoring provides ready-made scoring functions for package align:
// binary match/mismatch similarity, the fixed DNAfull nucleotide substitution
// table, and linear, affine and exponential gap costs.
//
// Similarity constructors capture the two sequences and translate symbol
// lookups into the index-based align.Similarity contract. Symbols are
// validated up front so the returned functions never fail.
package scoring
