package decomp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-stp/stp/circuit"
)

// ResynthesizeCircuit walks c and rebuilds it node-by-node, leaving
// every ≤2-input LUT verbatim and replacing every larger-fan-in LUT
// with its decomposition (spec.md §6's `lut_resyn` note, supplemented
// from original_source/ per SPEC_FULL.md). opts configure the
// decomposition used for oversized LUTs (default StpDsd, NoFallback).
func ResynthesizeCircuit(c *circuit.Circuit, opts ...Option) (*circuit.Circuit, error) {
	if err := c.UpdateLevels(); err != nil {
		return nil, decompErrorf("ResynthesizeCircuit", err)
	}

	type idLevel struct{ id, level int }
	var order []idLevel
	for id := 0; id < c.NumNodes(); id++ {
		node, err := c.Node(id)
		if err != nil {
			return nil, decompErrorf("ResynthesizeCircuit", err)
		}
		order = append(order, idLevel{id: id, level: node.Level})
	}
	sort.Slice(order, func(i, j int) bool { return order[i].level < order[j].level })

	out := circuit.NewCircuit()
	nameOf := make(map[int]string, len(order))

	for _, ol := range order {
		node, err := c.Node(ol.id)
		if err != nil {
			return nil, decompErrorf("ResynthesizeCircuit", err)
		}

		if node.IsPI && node.Matrix == nil {
			if _, err := out.CreatePI(node.Name); err != nil {
				return nil, decompErrorf("ResynthesizeCircuit", err)
			}
			nameOf[ol.id] = node.Name
		} else if len(node.Inputs) <= 2 {
			inputNames := declaredOrderNames(node, nameOf)
			if _, err := out.CreateNode(node.Name, inputNames, node.TruthTableHex); err != nil {
				return nil, decompErrorf("ResynthesizeCircuit", err)
			}
			nameOf[ol.id] = node.Name
		} else {
			if err := resynthesizeOne(out, node, nameOf, opts); err != nil {
				return nil, decompErrorf("ResynthesizeCircuit", err)
			}
			nameOf[ol.id] = node.Name
		}

		if node.IsPO {
			if _, err := out.CreatePO(node.Name); err != nil {
				return nil, decompErrorf("ResynthesizeCircuit", err)
			}
		}
	}

	return out, nil
}

// declaredOrderNames reverses node's stored (MSB-first) input order
// back to declaration order, resolving each to its already-built name
// in the new circuit.
func declaredOrderNames(node *circuit.Node, nameOf map[int]string) []string {
	names := make([]string, len(node.Inputs))
	for i, e := range node.Inputs {
		names[len(node.Inputs)-1-i] = nameOf[e.NodeID]
	}

	return names
}

// resynthesizeOne decomposes node's local function and materializes the
// resulting DAG as new circuit nodes, naming the root node.Name so
// downstream consumers resolve correctly.
func resynthesizeOne(out *circuit.Circuit, node *circuit.Node, nameOf map[int]string, opts []Option) error {
	bits, err := node.Matrix.Row0String()
	if err != nil {
		return err
	}

	// variable j (1-based) corresponds to node.Inputs[j-1], already in
	// the MSB-first order `bits` assumes.
	varName := make(map[int]string, len(node.Inputs))
	for j := 1; j <= len(node.Inputs); j++ {
		varName[j] = nameOf[node.Inputs[j-1].NodeID]
	}

	sess, root, err := Decompose(bits, opts...)
	if err != nil {
		return err
	}

	decompName := make(map[int]string, sess.NumNodes())
	for id := 0; id < sess.NumNodes(); id++ {
		n := sess.Node(id)
		if n.IsLeaf {
			decompName[id] = varName[n.VarIndex]
			continue
		}

		name := fmt.Sprintf("%s$%d", node.Name, id)
		if id == root {
			name = node.Name
		}

		childNames := make([]string, len(n.Children))
		for i, c := range n.Children {
			childNames[len(n.Children)-1-i] = decompName[c]
		}

		if _, err := out.CreateNode(name, childNames, bitsToHex(n.Bits)); err != nil {
			return err
		}
		decompName[id] = name
	}

	// A decomposition that collapses to a bare variable has no gate to
	// carry node.Name; emit a 1-input buffer under that name instead.
	if sess.Node(root).IsLeaf {
		_, err := out.CreateNode(node.Name, []string{decompName[root]}, bitsToHex("10"))
		return err
	}

	return nil
}

// bitsToHex renders bits (a power-of-two-length MSB-first 0/1 string)
// as the hex form circuit.CreateNode expects, left-padding with zero
// bits to a nibble boundary.
func bitsToHex(bits string) string {
	pad := (4 - len(bits)%4) % 4
	padded := strings.Repeat("0", pad) + bits

	var b strings.Builder
	for i := 0; i < len(padded); i += 4 {
		nibble := padded[i : i+4]
		v := 0
		for _, ch := range nibble {
			v = v<<1 | int(ch-'0')
		}
		fmt.Fprintf(&b, "%x", v)
	}

	return b.String()
}
