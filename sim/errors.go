package sim

import "errors"

// Sentinel errors for the sim package.
var (
	// ErrTooManyInputs indicates the circuit has more than 30 primary
	// inputs; exhaustive simulation is not attempted beyond that.
	ErrTooManyInputs = errors.New("sim: too many inputs")
)
