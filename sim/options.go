package sim

// defaultLimit is the default per-cone fan-in bound (spec.md §4.5).
const defaultLimit = 6

// Options configures Simulate.
type Options struct {
	// Limit stops a cone from absorbing further internal nodes once its
	// leaf count reaches Limit; inputs met after that still become
	// leaves, so a cone can end with more than Limit leaves. Zero means
	// defaultLimit.
	Limit int
}

// Option mutates an Options.
type Option func(*Options)

// WithLimit overrides the default cone fan-in bound.
func WithLimit(limit int) Option {
	return func(o *Options) { o.Limit = limit }
}

// DefaultOptions applies opts over the package default (Limit = 6).
func DefaultOptions(opts ...Option) Options {
	o := Options{Limit: defaultLimit}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Limit <= 0 {
		o.Limit = defaultLimit
	}

	return o
}
