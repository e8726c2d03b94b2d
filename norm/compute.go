package norm

import (
	"github.com/go-stp/stp/chain"
	"github.com/go-stp/stp/circuit"
)

// Compute reduces the cone rooted at outputID to its canonical truth
// table. It walks the cone via circuit.Preorder and builds a
// chain.Chain: gate nodes become chain.OpToken(node.Matrix), PI nodes
// become chain.VarToken(rank) where rank is the node's 1-based position
// in the target order.
func Compute(c *circuit.Circuit, outputID int, opts ...Option) (chain.Result, error) {
	o := DefaultOptions(opts...)
	if o.Order == nil {
		o.Order = c.Inputs()
	}

	rank := make(map[int]int, len(o.Order))
	for i, id := range o.Order {
		rank[id] = i + 1
	}

	ids, err := c.Preorder(outputID)
	if err != nil {
		return chain.Result{}, err
	}

	ch := make(chain.Chain, 0, len(ids))
	for _, id := range ids {
		n, err := c.Node(id)
		if err != nil {
			return chain.Result{}, err
		}
		if n.IsPI {
			r, ok := rank[id]
			if !ok {
				return chain.Result{}, ErrUnknownVariable
			}
			ch = append(ch, chain.VarToken(r))
			continue
		}
		ch = append(ch, chain.OpToken(n.Matrix))
	}

	return chain.Normalize(ch, o.Eval...)
}
