// Package stpalg implements the semi-tensor-product (STP) algebra kernel:
// dense 0/1 (and small non-negative integer) matrices, Kronecker products,
// swap matrices, power-reducing matrices, the semi-tensor product itself,
// and matrix-chain multiplication with a cost-minimizing parenthesization.
//
// All matrices are integer-valued. Structural matrices (the encoding of a
// Boolean function's truth table, see NewStructuralMatrix) are strictly
// 0/1; intermediate products absorbed into identity or swap tensors may
// carry larger magnitudes transiently but every chain that represents a
// Boolean function evaluates back down to 0/1.
//
// Operations never alias: every constructor and every transform returns a
// freshly allocated Matrix, matching the teacher package's "no surprise
// mutation" convention.
//
// # STP — the semi-tensor product
//
// For A: m×n and B: p×q, the semi-tensor product A⋉B is defined whenever
// n%p==0 or p%n==0. Let t = lcm(n,p):
//
//	A⋉B = (A ⊗ I_{t/n}) · (B ⊗ I_{t/p})
//
// This coincides with the ordinary matrix product when n == p. Two
// strategies compute it — Native (literal tensor-then-multiply) and Copy
// (block-replication without materializing the tensored operands) — and
// they MUST agree bit-for-bit; CopyStrategy is the default because it
// avoids the larger intermediate allocations.
//
// Complexity: O(result nnz) for Kron (structural matrices have exactly one
// 1 per column); O(m*n*q) for STP's Copy strategy.
package stpalg
