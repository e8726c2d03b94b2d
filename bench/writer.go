package bench

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-stp/stp/circuit"
)

// Write emits c to w in BENCH format: all INPUT lines (creation order),
// all OUTPUT lines (creation order), a blank line, then one LUT line per
// internal gate reachable from an output, in ascending topological
// (Level) order, ties broken by node id. Each LUT line lists its child
// references in declaration order, the reverse of Node.Inputs' stored
// MSB-first order (CreateNode stores inputs reversed relative to
// declaration order); Write reverses Node.Inputs again on the way out,
// the same as decomp.ResynthesizeCircuit's declaredOrderNames does, so
// Read followed by Write reproduces the declared argument order.
func Write(w io.Writer, c *circuit.Circuit) error {
	if err := c.UpdateLevels(); err != nil {
		return benchErrorf("Write", err)
	}

	for _, id := range c.Inputs() {
		n, err := c.Node(id)
		if err != nil {
			return benchErrorf("Write", err)
		}
		if _, err := fmt.Fprintf(w, "INPUT(%s)\n", n.Name); err != nil {
			return benchErrorf("Write", err)
		}
	}
	for _, id := range c.Outputs() {
		n, err := c.Node(id)
		if err != nil {
			return benchErrorf("Write", err)
		}
		if _, err := fmt.Fprintf(w, "OUTPUT(%s)\n", n.Name); err != nil {
			return benchErrorf("Write", err)
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return benchErrorf("Write", err)
	}

	gates, err := gateClosure(c)
	if err != nil {
		return benchErrorf("Write", err)
	}
	for _, n := range gates {
		args := make([]string, len(n.Inputs))
		for i, e := range n.Inputs {
			in, err := c.Node(e.NodeID)
			if err != nil {
				return benchErrorf("Write", err)
			}
			// n.Inputs is stored reversed relative to declaration order
			// (CreateNode's own convention); reverse it back here so the
			// emitted line matches the declared argument order, the same
			// bookkeeping decomp.ResynthesizeCircuit's declaredOrderNames
			// does on its way out.
			args[len(args)-1-i] = in.Name
		}
		if _, err := fmt.Fprintf(w, "%s = LUT 0x%s ( %s )\n", n.Name, n.TruthTableHex, joinComma(args)); err != nil {
			return benchErrorf("Write", err)
		}
	}

	return nil
}

func joinComma(args []string) string {
	out := ""
	for i, a := range args {
		if i > 0 {
			out += ", "
		}
		out += a
	}

	return out
}

// gateClosure returns every internal (non-PI) node reachable from any
// output, deduplicated and sorted ascending by Level then id.
func gateClosure(c *circuit.Circuit) ([]*circuit.Node, error) {
	seen := map[int]bool{}
	var gates []*circuit.Node

	for _, outID := range c.Outputs() {
		order, err := c.Preorder(outID)
		if err != nil {
			return nil, err
		}
		for _, id := range order {
			if seen[id] {
				continue
			}
			seen[id] = true

			n, err := c.Node(id)
			if err != nil {
				return nil, err
			}
			if n.IsPI {
				continue
			}
			gates = append(gates, n)
		}
	}

	sort.Slice(gates, func(i, j int) bool {
		if gates[i].Level != gates[j].Level {
			return gates[i].Level < gates[j].Level
		}

		return gates[i].ID < gates[j].ID
	})

	return gates, nil
}
