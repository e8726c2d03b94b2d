package norm

import "errors"

// Sentinel errors for the norm package.
var (
	// ErrUnknownVariable indicates the cone rooted at the requested
	// output references a PI not present in the target Order.
	ErrUnknownVariable = errors.New("norm: variable not in target order")
)
