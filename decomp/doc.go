// Package decomp implements DEC: functional decomposition of a binary
// truth-table string into a DAG of small (mostly 2-input) LUTs.
//
// Variables are numbered 1..n with variable 1 the most significant bit
// of the truth-table index convention shared with stpalg and circuit:
// F[i] gives F's value under the assignment whose integer is 2ⁿ−1−i.
//
// Every decomposition call (Decompose, BiDecompose, Decompose66) owns a
// fresh Session: the node list and the structural hash
// (func, children) → id are process-wide only within that one call,
// matching the "one active session at a time" model of spec.md §5.
package decomp
