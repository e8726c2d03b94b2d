package decomp

// Mode selects the decomposition strategy (spec.md §4.6).
type Mode int

const (
	// StpDsd is disjoint-support decomposition via structural-matrix
	// block patterns (CLI `dsd -f`). It is the default.
	StpDsd Mode = iota
	// StrongDsd detects an Ashenhurst/Curtis-style (ACD) block split
	// (CLI `dsd -s`).
	StrongDsd
	// Mixed prefers StpDsd per layer, falling back to StrongDsd on
	// failure (CLI `dsd -m`).
	Mixed
	// BiDec enumerates AND/OR/XOR splits over variable partitions
	// (CLI `bd`).
	BiDec
	// LutHybrid66 bounds every internal node to ≤6 inputs, falling
	// back through StrongDsd then BiDec (CLI `66l`).
	LutHybrid66
)

// Fallback selects what happens when the chosen Mode cannot reduce a
// residue further.
type Fallback int

const (
	// NoFallback surfaces ErrDecompositionFailed immediately.
	NoFallback Fallback = iota
	// ShannonPlusExact2LUT invokes the exact 2-LUT oracle for
	// residues with ≤4 variables, or Shannon-expands the first
	// variable and recurses for larger residues (CLI `-e`).
	ShannonPlusExact2LUT
)

// Options configures a decomposition call.
type Options struct {
	Mode     Mode
	Fallback Fallback
}

// Option mutates an Options.
type Option func(*Options)

// WithMode overrides the default Mode (StpDsd).
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithFallback overrides the default Fallback (NoFallback).
func WithFallback(f Fallback) Option {
	return func(o *Options) { o.Fallback = f }
}

// DefaultOptions applies opts over {Mode: StpDsd, Fallback: NoFallback}.
func DefaultOptions(opts ...Option) Options {
	o := Options{Mode: StpDsd, Fallback: NoFallback}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
