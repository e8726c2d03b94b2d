package circuit

import (
	"fmt"

	"github.com/go-stp/stp/stpalg"
)

// circuitErrorf wraps err with op context, mirroring the teacher's
// matrixErrorf/denseErrorf helpers.
func circuitErrorf(op string, err error) error {
	return fmt.Errorf("circuit: %s: %w", op, err)
}

// getOrCreateNode returns the id of the node registered under name,
// creating an undefined placeholder (no truth table yet, IsPI false) if
// none exists. This lets CreateNode reference fan-in names that are
// declared later in a BENCH file's textual order, the same forward-
// reference tolerance the teacher's builder.Builder affords edge
// endpoints.
func (c *Circuit) getOrCreateNode(name string) int {
	if id, ok := c.nameIndex[name]; ok {
		return id
	}

	id := len(c.nodes)
	c.nodes = append(c.nodes, &Node{ID: id, Name: name})
	c.nameIndex[name] = id

	return id
}

// CreatePI declares name as a primary input. Calling CreatePI twice on
// the same name is idempotent; calling it on a name already defined as
// a gate returns ErrAlreadyDefined.
func (c *Circuit) CreatePI(name string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.getOrCreateNode(name)
	n := c.nodes[id]
	if n.TruthTableHex != "" {
		return 0, circuitErrorf("CreatePI", ErrAlreadyDefined)
	}
	if !n.IsPI {
		n.IsPI = true
		c.inputs = append(c.inputs, id)
	}

	return id, nil
}

// CreatePO marks name as a primary output. The node need not yet exist;
// it may be declared as a gate later. Calling CreatePO twice on the
// same name is idempotent.
func (c *Circuit) CreatePO(name string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.getOrCreateNode(name)
	n := c.nodes[id]
	if !n.IsPO {
		n.IsPO = true
		c.outputs = append(c.outputs, id)
	}

	return id, nil
}

// CreateNode defines outputName as an internal LUT gate driven by
// inputNames (in the caller's declaration order) with the given hex
// truth table. inputNames must be non-empty and the hex string must
// decode cleanly against len(inputNames) (see hexToBits). Node.Inputs
// is stored reversed relative to inputNames per the doc.go invariant.
//
// Defining the same outputName twice, or defining a name already
// declared as a primary input, returns ErrAlreadyDefined.
func (c *Circuit) CreateNode(outputName string, inputNames []string, hex string) (int, error) {
	if len(inputNames) == 0 {
		return 0, circuitErrorf("CreateNode", ErrNoInputs)
	}

	bits, err := hexToBits(hex, len(inputNames))
	if err != nil {
		return 0, circuitErrorf("CreateNode", err)
	}
	mat, err := stpalg.NewStructuralMatrix(bits)
	if err != nil {
		return 0, circuitErrorf("CreateNode", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.getOrCreateNode(outputName)
	n := c.nodes[id]
	if n.TruthTableHex != "" || n.IsPI {
		return 0, circuitErrorf("CreateNode", ErrAlreadyDefined)
	}

	n.TruthTableHex = hex
	n.Matrix = mat
	n.Inputs = make([]Edge, len(inputNames))
	for i, inName := range inputNames {
		inID := c.getOrCreateNode(inName)
		// reversed: declaration position i maps to slot len-1-i
		n.Inputs[len(inputNames)-1-i] = Edge{NodeID: inID}
		c.nodes[inID].Outputs = append(c.nodes[inID].Outputs, Edge{NodeID: id})
	}

	return id, nil
}

// nodeColor tracks 3-state DFS cycle detection, mirroring the teacher's
// dfs package (White = unvisited, Gray = on the recursion stack, Black
// = finished).
type nodeColor uint8

const (
	white nodeColor = iota
	gray
	black
)

// frame is an explicit work-stack entry for the iterative post-order
// walk UpdateLevels performs, avoiding recursion depth limits on deep
// netlists the same way the teacher's dfs.TopologicalSort does.
type frame struct {
	id       int
	childIdx int
}

// UpdateLevels computes Node.Level for every node (PIs are level 0;
// a gate's level is 1 + max(level of its inputs)) via an iterative
// post-order traversal with 3-state cycle detection, and returns
// ErrCycleDetected if the netlist is not a DAG.
func (c *Circuit) UpdateLevels() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	colors := make([]nodeColor, len(c.nodes))

	for start := range c.nodes {
		if colors[start] != white {
			continue
		}

		stack := []frame{{id: start}}
		colors[start] = gray

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			n := c.nodes[top.id]

			if top.childIdx < len(n.Inputs) {
				childID := n.Inputs[top.childIdx].NodeID
				top.childIdx++

				switch colors[childID] {
				case white:
					colors[childID] = gray
					stack = append(stack, frame{id: childID})
				case gray:
					return circuitErrorf("UpdateLevels", ErrCycleDetected)
				case black:
					// already finished, level already accounted for
				}
				continue
			}

			level := 0
			for _, in := range n.Inputs {
				if lv := c.nodes[in.NodeID].Level + 1; lv > level {
					level = lv
				}
			}
			n.Level = level
			colors[top.id] = black
			stack = stack[:len(stack)-1]
		}
	}

	return nil
}
