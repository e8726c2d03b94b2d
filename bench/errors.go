package bench

import "errors"

// Sentinel errors for the bench package.
var (
	// ErrSyntax indicates a line matched none of the grammar's three
	// productions (INPUT, OUTPUT, or a LUT assignment).
	ErrSyntax = errors.New("bench: syntax error")

	// ErrMalformedLUT indicates a LUT line's parenthesized fan-in list
	// or hex literal is malformed.
	ErrMalformedLUT = errors.New("bench: malformed LUT line")
)
