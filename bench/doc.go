// Package bench implements the BENCH subset: reading and writing the
// line-oriented netlist format spec.md §6 defines.
//
//	INPUT(name)
//	OUTPUT(name)
//	<name> = LUT <0xHEX> ( <in1>, <in2>, ..., <ink> )
//
// Comments begin with '#' and run to end of line; blank lines are
// tolerated anywhere. Reading builds a circuit.Circuit via its
// CreatePI/CreatePO/CreateNode constructors, so the usual forward-
// reference and idempotent-declaration rules apply. Writing emits all
// INPUT lines, then all OUTPUT lines, a blank line, then one LUT line
// per internal gate reachable from an output, in ascending topological
// (level) order, with child references reversed back into declaration
// order from the circuit's own MSB-first Node.Inputs storage.
package bench
