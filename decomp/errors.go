package decomp

import "errors"

// Sentinel errors for the decomp package.
var (
	// ErrBadTruthTable indicates the input string is empty, not a
	// power-of-two length, or contains characters other than '0'/'1'.
	ErrBadTruthTable = errors.New("decomp: bad truth table")

	// ErrDecompositionFailed indicates no recognition rule (and, if
	// enabled, no fallback) could decompose the residue.
	ErrDecompositionFailed = errors.New("decomp: decomposition failed")

	// ErrUnsupportedSize indicates a top-level call (Decompose,
	// BiDecompose, Decompose66) was given a truth table over more than
	// 30 variables.
	ErrUnsupportedSize = errors.New("decomp: unsupported size")
)
