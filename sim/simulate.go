package sim

import (
	"sort"

	"github.com/go-stp/stp/chain"
	"github.com/go-stp/stp/circuit"
)

// Simulate exhaustively evaluates every primary output of c over all
// 2^n input patterns (n = number of primary inputs), returning a map
// from PO name to its truth-table string in the MSB-first convention of
// the structural matrix. Returns ErrTooManyInputs when n > 30.
func Simulate(c *circuit.Circuit, opts ...Option) (map[string]string, error) {
	o := DefaultOptions(opts...)

	if err := c.UpdateLevels(); err != nil {
		return nil, err
	}

	pis := c.Inputs()
	n := len(pis)
	if n > 30 {
		return nil, ErrTooManyInputs
	}

	isBoundary := map[int]bool{}
	for _, id := range c.Outputs() {
		isBoundary[id] = true
	}
	for id := 0; id < c.NumNodes(); id++ {
		node, err := c.Node(id)
		if err != nil {
			return nil, err
		}
		if len(node.Outputs) > 1 {
			isBoundary[id] = true
		}
	}

	// Fixpoint: any cone leaf that discoverConeLeaves reports but that
	// isn't yet flagged boundary gets promoted, since a later cone may
	// also need to treat it as an already-simulated input.
	for changed := true; changed; {
		changed = false
		ids := make([]int, 0, len(isBoundary))
		for id := range isBoundary {
			ids = append(ids, id)
		}
		for _, id := range ids {
			node, err := c.Node(id)
			if err != nil {
				return nil, err
			}
			if node.IsPI {
				continue
			}
			leaves, err := discoverConeLeaves(c, id, isBoundary, o.Limit)
			if err != nil {
				return nil, err
			}
			for _, leaf := range leaves {
				leafNode, err := c.Node(leaf)
				if err != nil {
					return nil, err
				}
				if !leafNode.IsPI && !isBoundary[leaf] {
					isBoundary[leaf] = true
					changed = true
				}
			}
		}
	}

	type bnode struct {
		id    int
		level int
	}
	var order []bnode
	for id := range isBoundary {
		node, err := c.Node(id)
		if err != nil {
			return nil, err
		}
		if node.IsPI {
			continue
		}
		order = append(order, bnode{id: id, level: node.Level})
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].level != order[j].level {
			return order[i].level < order[j].level
		}
		return order[i].id < order[j].id
	})

	width := 1 << uint(n)
	values := make(map[int][]byte, len(order)+n)

	piRank := make(map[int]int, n)
	for i, id := range pis {
		piRank[id] = i + 1
		arr := make([]byte, width)
		r := i + 1
		for idx := 0; idx < width; idx++ {
			v := width - 1 - idx
			arr[idx] = byte((v >> uint(n-r)) & 1)
		}
		values[id] = arr
	}

	for _, bn := range order {
		leaves, err := discoverConeLeaves(c, bn.id, isBoundary, o.Limit)
		if err != nil {
			return nil, err
		}
		leafRank := make(map[int]int, len(leaves))
		for i, id := range leaves {
			leafRank[id] = i + 1
		}

		ch, err := buildConeChain(c, bn.id, leafRank)
		if err != nil {
			return nil, err
		}
		res, err := chain.Normalize(ch)
		if err != nil {
			return nil, err
		}

		k := len(leaves)
		arr := make([]byte, width)
		for idx := 0; idx < width; idx++ {
			leafVal := 0
			for li, leafID := range leaves {
				leafVal |= int(values[leafID][idx]) << uint(k-1-li)
			}
			pos := (1 << uint(k)) - 1 - leafVal
			arr[idx] = res.TruthTable[pos] - '0'
		}
		values[bn.id] = arr
	}

	result := make(map[string]string, len(c.Outputs()))
	for _, id := range c.Outputs() {
		node, err := c.Node(id)
		if err != nil {
			return nil, err
		}
		arr := values[id]
		out := make([]byte, len(arr))
		for i, v := range arr {
			if v == 1 {
				out[i] = '1'
			} else {
				out[i] = '0'
			}
		}
		result[node.Name] = string(out)
	}

	return result, nil
}
