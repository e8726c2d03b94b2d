package stpalg

import "errors"

// Sentinel errors for the stpalg package. Callers should match with
// errors.Is; messages are prefixed with "stpalg: " for grep-ability.
var (
	// ErrBadShape indicates a requested matrix shape is non-positive.
	ErrBadShape = errors.New("stpalg: invalid shape")

	// ErrOutOfRange indicates a row or column index outside [0, dim).
	ErrOutOfRange = errors.New("stpalg: index out of range")

	// ErrShapeMismatch indicates two operands cannot be combined: for STP,
	// neither n%p==0 nor p%n==0 holds; for ordinary multiply, inner
	// dimensions disagree.
	ErrShapeMismatch = errors.New("stpalg: shape mismatch")

	// ErrEmptyChain indicates ChainMultiply was given a zero-length chain.
	ErrEmptyChain = errors.New("stpalg: empty chain")

	// ErrBadTruthTable indicates a truth-table string used to build a
	// structural matrix is malformed (not power-of-two length, or
	// contains characters other than '0'/'1').
	ErrBadTruthTable = errors.New("stpalg: bad truth table")
)
