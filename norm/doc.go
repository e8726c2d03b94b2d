// Package norm implements NORM: reducing a single output cone of a
// circuit.Circuit to its canonical truth table via the STP chain
// algebra. It walks the cone with circuit.Preorder, maps each visited
// node to a chain.Token (an operator matrix for a gate, a ranked
// symbolic variable for a PI), and hands the resulting chain.Chain to
// chain.Normalize.
//
// The variable target order is caller-supplied (defaulting to the
// circuit's PI declaration order) since a caller synthesizing a BENCH
// file or comparing two circuits needs control over which PI becomes
// the MSB.
package norm
