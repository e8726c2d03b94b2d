// Package chain implements the CHAIN subsystem: rewriting a mixed
// sequence of structural matrices and symbolic variable placeholders
// into canonical form — all variables right-aligned, sorted by a target
// order, and power-reduced — and evaluating the result through stpalg to
// yield a single 2×2ⁿ row matrix whose row 0 is a truth table.
//
// # Algorithm
//
//  1. Right-align: walk the chain left-to-right; each time an operator
//     token is emitted, count variables already seen to its left and
//     prepend an Identity(2^c) token. All variables are appended at the
//     tail in original order.
//  2. Sort the tail to the target variable order via insertion-sort
//     adjacent swaps; each swap inserts a Swap2 token immediately before
//     the transposed pair and re-triggers step 1 for the new operator.
//  3. Power-reduce: a run of r equal adjacent variables collapses to one
//     variable preceded by (r-1) PowerReduce2 tokens.
//  4. Concretize: fold Identity(2^c) into the operator matrix it
//     precedes (I_{2^c} ⊗ M); expand Swap2/PowerReduce2 to concrete
//     4×2 / 4×4 matrices.
//  5. Evaluate the operator-only chain via stpalg.ChainMultiply.
//
// The canonical truth-table string this produces is independent of the
// originating circuit's topology: two circuits computing the same
// Boolean function normalize to the same row (spec.md §4.2).
package chain
