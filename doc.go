// Package stp is a semi-tensor-product toolkit for Boolean logic
// synthesis: representing LUT netlists, normalizing their local
// functions through STP algebra, simulating them exhaustively, and
// decomposing oversized truth tables into small-fan-in LUT networks.
//
// Under the hood, everything is organized under seven subpackages:
//
//	stpalg/ — dense matrix kernel: Kronecker product, swap/power-reduce
//	          matrices, single-pair STP, and chain multiplication
//	chain/  — symbolic chain normalizer (CHAIN): right-align, sort to a
//	          target variable order, power-reduce, concretize, evaluate
//	circuit/ — LUT circuit data model (CIRC): a DAG of PI/PO/gate nodes
//	          with structural matrices, level computation, traversal
//	norm/   — bridges a circuit cone to a chain.Chain and normalizes it
//	          to a single canonical row (NORM)
//	sim/    — exhaustive pattern simulation with fan-out cone cutting
//	          (SIM)
//	decomp/ — functional decomposition of an oversized truth table into
//	          a DAG of small LUTs: STP-DSD, Strong DSD, bi-decomposition,
//	          the 66-LUT hybrid, and a Shannon-expansion fallback (DEC)
//	bench/  — reads and writes the BENCH netlist format
package stp
