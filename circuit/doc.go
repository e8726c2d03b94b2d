// Package circuit implements CIRC: the LUT-circuit data model. A Circuit
// is a directed acyclic netlist of Node values — primary inputs (PI),
// primary outputs (PO), and internal LUT gates — each carrying a
// truth-table hex string, a structural matrix (stpalg.Matrix), an
// ordered input list, an unordered output multiset, and a level.
//
// A Circuit is built incrementally (by a BENCH reader or by direct calls
// to CreatePI/CreatePO/CreateNode) and is read-only once construction is
// complete; traversal and level computation assume no further mutation.
//
// # The input-order invariant
//
// CreateNode accepts inputs in the caller's (external, declaration)
// order but stores them internally REVERSED, so that Node.Inputs[0] is
// the MSB-most operand under the structural-matrix encoding of §3. This
// reversal is load-bearing: every downstream traversal (NORM's
// preorder walk, SIM's cone construction) relies on Node.Inputs already
// being in the matrix's own column order.
package circuit
