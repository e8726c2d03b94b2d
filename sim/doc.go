// Package sim implements SIM: exhaustive simulation of a circuit.Circuit
// over all 2^n input patterns (n primary inputs, n ≤ 30), bounded by
// cone-cutting so no single NORM invocation blows up to a 2×2ⁿ matrix.
//
// A "boundary" node is a primary output or any node with fan-out > 1.
// Simulate grows a cone breadth-first from each boundary, absorbing
// internal nodes until the cone's fan-in would exceed a configurable
// limit (default 6) or no internal inputs remain; any input the cone
// cannot absorb is itself promoted to a boundary. Each boundary's cone
// is reduced to a truth table via chain.Normalize (through norm's
// token-building convention) and memoized; boundaries are evaluated in
// ascending topological level so their inputs are always ready.
package sim
