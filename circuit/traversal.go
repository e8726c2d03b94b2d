package circuit

// visit is an explicit work-stack entry for Preorder, standing in for
// the call frame of a recursive preorder walk (node, then each input in
// stored order) so deep netlists don't blow the Go call stack — the
// same iterative-traversal shape the teacher uses for topological sort.
type visit struct {
	id      int
	pending []int // remaining input ids to push, nearest first
}

// Preorder walks the cone rooted at outputID in operator-prefix order:
// a gate node is emitted before its inputs, and inputs are emitted in
// their stored (MSB-first) order. PI nodes are emitted as leaves with
// no further expansion. The result is the token sequence NORM consumes
// to build a chain.Chain.
func (c *Circuit) Preorder(outputID int) ([]int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if outputID < 0 || outputID >= len(c.nodes) {
		return nil, ErrNodeNotFound
	}

	var order []int
	stack := []visit{{id: outputID, pending: c.inputIDs(outputID)}}
	order = append(order, outputID)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if len(top.pending) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := top.pending[0]
		top.pending = top.pending[1:]
		order = append(order, next)

		if !c.nodes[next].IsPI {
			stack = append(stack, visit{id: next, pending: c.inputIDs(next)})
		}
	}

	return order, nil
}

// inputIDs returns the input node ids of id in stored (MSB-first) order.
func (c *Circuit) inputIDs(id int) []int {
	n := c.nodes[id]
	ids := make([]int, len(n.Inputs))
	for i, e := range n.Inputs {
		ids[i] = e.NodeID
	}

	return ids
}
