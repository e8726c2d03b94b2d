package circuit

import (
	"sync"

	"github.com/go-stp/stp/stpalg"
)

// Edge references a node by id and carries a complement bit. The
// complement bit is reserved by the wire protocol (spec.md §3) and is
// always false in the current implementation.
type Edge struct {
	NodeID     int
	Complement bool
}

// Node is a single vertex of a Circuit: a primary input, a primary
// output, or an internal LUT gate (a node may be both PI and PO, a
// pass-through).
type Node struct {
	ID            int
	Name          string
	IsPI          bool
	IsPO          bool
	TruthTableHex string         // empty for PIs
	Matrix        *stpalg.Matrix // empty/nil for PIs
	Inputs        []Edge         // ordered, MSB-first (reversed vs. declaration order)
	Outputs       []Edge         // unordered multiset of fanout edges
	Level         int
}

// Circuit is a directed acyclic netlist of Node values, grounded on the
// teacher's core.Graph: a single RWMutex guards the node arena and name
// index since a Circuit is built by one writer and then read by many.
type Circuit struct {
	mu        sync.RWMutex
	nodes     []*Node
	inputs    []int // PI node ids, in creation order
	outputs   []int // PO node ids, in creation order
	nameIndex map[string]int
}

// NewCircuit returns an empty Circuit ready for incremental construction.
func NewCircuit() *Circuit {
	return &Circuit{nameIndex: make(map[string]int)}
}

// Node returns the node with the given id, or ErrNodeNotFound.
func (c *Circuit) Node(id int) (*Node, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if id < 0 || id >= len(c.nodes) {
		return nil, ErrNodeNotFound
	}

	return c.nodes[id], nil
}

// NodeByName returns the node id registered under name, or ErrNodeNotFound.
func (c *Circuit) NodeByName(name string) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	id, ok := c.nameIndex[name]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return id, nil
}

// Inputs returns the PI node ids in creation order.
func (c *Circuit) Inputs() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]int, len(c.inputs))
	copy(out, c.inputs)

	return out
}

// Outputs returns the PO node ids in creation order.
func (c *Circuit) Outputs() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]int, len(c.outputs))
	copy(out, c.outputs)

	return out
}

// NumNodes returns the total node count (dense ids 0..NumNodes).
func (c *Circuit) NumNodes() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.nodes)
}
