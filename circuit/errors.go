package circuit

import "errors"

// Sentinel errors for the circuit package.
var (
	// ErrBadTruthTable indicates a malformed hex truth-table string:
	// wrong length for the declared fan-in, or non-hex characters.
	ErrBadTruthTable = errors.New("circuit: bad truth table")

	// ErrNoInputs indicates CreateNode was called with zero inputs; every
	// non-PI node requires at least one input (spec.md §3 invariant).
	ErrNoInputs = errors.New("circuit: node has no inputs")

	// ErrAlreadyDefined indicates CreateNode targeted an output name that
	// already has a truth table or is a primary input (a gate may be
	// defined only once), or CreatePI targeted a name already defined as
	// a gate.
	ErrAlreadyDefined = errors.New("circuit: node already defined")

	// ErrNodeNotFound indicates a lookup (by id or name) failed.
	ErrNodeNotFound = errors.New("circuit: node not found")

	// ErrCycleDetected indicates UpdateLevels found a cycle; the netlist
	// is not acyclic.
	ErrCycleDetected = errors.New("circuit: cycle detected")
)
