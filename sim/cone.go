package sim

import (
	"github.com/go-stp/stp/chain"
	"github.com/go-stp/stp/circuit"
)

// inputIDs returns n's input node ids in stored (MSB-first) order.
func inputIDs(n *circuit.Node) []int {
	ids := make([]int, len(n.Inputs))
	for i, e := range n.Inputs {
		ids[i] = e.NodeID
	}

	return ids
}

// discoverConeLeaves grows the cone rooted at rootID breadth-first,
// absorbing internal (non-leaf) nodes until the running leaf count
// would reach limit, then returns the distinct leaf ids in discovery
// order (spec.md §4.5 cone-cutting rule). A node is a leaf of this cone
// if it is a primary input, already flagged boundary, or absorption was
// refused because the limit was reached.
func discoverConeLeaves(c *circuit.Circuit, rootID int, isBoundary map[int]bool, limit int) ([]int, error) {
	root, err := c.Node(rootID)
	if err != nil {
		return nil, err
	}

	absorbed := map[int]bool{rootID: true}
	leafSet := map[int]bool{}
	var leafOrder []int
	queue := inputIDs(root)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if absorbed[id] || leafSet[id] {
			continue
		}

		node, err := c.Node(id)
		if err != nil {
			return nil, err
		}

		if node.IsPI || isBoundary[id] || len(leafSet) >= limit {
			leafSet[id] = true
			leafOrder = append(leafOrder, id)
			continue
		}

		absorbed[id] = true
		queue = append(queue, inputIDs(node)...)
	}

	return leafOrder, nil
}

// buildConeChain rebuilds the rootID cone as a chain.Chain, stopping
// expansion at any id present in leafRank (mapped to its VarToken rank)
// and emitting chain.OpToken(node.Matrix) for every absorbed gate, via
// an explicit work-stack preorder walk mirroring circuit.Preorder.
func buildConeChain(c *circuit.Circuit, rootID int, leafRank map[int]int) (chain.Chain, error) {
	root, err := c.Node(rootID)
	if err != nil {
		return nil, err
	}

	type frame struct {
		id      int
		pending []int
	}

	ch := chain.Chain{chain.OpToken(root.Matrix)}
	stack := []frame{{id: rootID, pending: inputIDs(root)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if len(top.pending) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := top.pending[0]
		top.pending = top.pending[1:]

		if rank, ok := leafRank[next]; ok {
			ch = append(ch, chain.VarToken(rank))
			continue
		}

		node, err := c.Node(next)
		if err != nil {
			return nil, err
		}
		ch = append(ch, chain.OpToken(node.Matrix))
		stack = append(stack, frame{id: next, pending: inputIDs(node)})
	}

	return ch, nil
}
