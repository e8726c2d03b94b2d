package chain

import "errors"

// Sentinel errors for the chain package.
var (
	// ErrEmptyChain indicates Normalize was given a zero-length chain.
	ErrEmptyChain = errors.New("chain: empty chain")

	// ErrUnknownVariable indicates a Var token's ordinal has no entry in
	// the supplied variable order.
	ErrUnknownVariable = errors.New("chain: variable not present in order")

	// ErrNotFullyReduced indicates evaluation produced a matrix whose
	// shape is not 2×2ⁿ — normalization did not collapse all variables.
	ErrNotFullyReduced = errors.New("chain: chain did not reduce to a single row")
)
