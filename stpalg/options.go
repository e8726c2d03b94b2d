package stpalg

// Strategy selects how STP computes A⋉B. Both strategies MUST produce
// bit-identical results (spec.md §4.1, §8); they differ only in
// intermediate allocation shape.
type Strategy int

const (
	// CopyStrategy forms the result by block-replication without
	// materializing the tensored operands. Default: avoids the larger
	// A⊗I / B⊗I intermediates.
	CopyStrategy Strategy = iota
	// NativeStrategy computes (A⊗I_{t/n})·(B⊗I_{t/p}) literally.
	NativeStrategy
)

// ChainMethod selects how ChainMultiply orders the binary STP reductions.
// Both methods MUST produce bit-identical results; DynamicProgramming
// exists purely to bound runtime on long chains.
type ChainMethod int

const (
	// SequenceMethod folds the chain strictly left-to-right.
	SequenceMethod ChainMethod = iota
	// DynamicProgrammingMethod picks a cost-minimizing parenthesization.
	DynamicProgrammingMethod
)

// Options configures STP and ChainMultiply.
type Options struct {
	Strategy    Strategy
	ChainMethod ChainMethod
}

// Option configures an Options value.
type Option func(*Options)

// WithStrategy overrides the STP strategy (default CopyStrategy).
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithChainMethod overrides the chain multiplication method (default
// DynamicProgrammingMethod).
func WithChainMethod(m ChainMethod) Option {
	return func(o *Options) { o.ChainMethod = m }
}

// DefaultOptions returns Options with CopyStrategy and
// DynamicProgrammingMethod, overridden by the supplied Option functions.
func DefaultOptions(opts ...Option) Options {
	o := Options{Strategy: CopyStrategy, ChainMethod: DynamicProgrammingMethod}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
