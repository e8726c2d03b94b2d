package norm

import "github.com/go-stp/stp/stpalg"

// Options configures Compute.
type Options struct {
	// Order lists PI node ids in target MSB-first order. A nil Order
	// defaults to the circuit's PI declaration order.
	Order []int
	// Eval is forwarded to chain.Normalize / stpalg.ChainMultiply.
	Eval []stpalg.Option
}

// Option mutates an Options.
type Option func(*Options)

// WithOrder overrides the default (declaration) variable order.
func WithOrder(order []int) Option {
	return func(o *Options) { o.Order = order }
}

// WithEval forwards stpalg evaluation options.
func WithEval(opts ...stpalg.Option) Option {
	return func(o *Options) { o.Eval = opts }
}

// DefaultOptions applies opts over the zero Options value.
func DefaultOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
