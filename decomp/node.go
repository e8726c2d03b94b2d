package decomp

import (
	"fmt"
	"strings"
)

// Node is a single vertex of a decomposition DAG: either a variable
// leaf or an internal LUT keyed by its local truth-table Bits and its
// ordered (MSB-first) Children.
type Node struct {
	ID       int
	IsLeaf   bool
	VarIndex int    // 1-based; valid when IsLeaf
	Bits     string // local truth table, MSB-first; empty when IsLeaf
	Children []int  // ordered MSB-first child ids; empty when IsLeaf
}

// SessionStats reports read-only observability the original's
// lut_func_cache.hpp exposed: total node count, structural-hash hit
// count, and the deepest recursion reached.
type SessionStats struct {
	NodeCount int
	HashHits  int
	MaxDepth  int
}

// Session owns one decomposition's node arena and structural hash.
// Per spec.md §5/§9, a Session is not safe for concurrent top-level
// calls; each top-level Decompose/BiDecompose/Decompose66 call uses its
// own fresh Session.
type Session struct {
	nodes    []*Node
	hash     map[string]int
	hashHits int
	maxDepth int
}

// NewSession returns an empty Session.
func NewSession() *Session {
	return &Session{hash: make(map[string]int)}
}

// Stats reports the session's current bookkeeping counters.
func (s *Session) Stats() SessionStats {
	return SessionStats{NodeCount: len(s.nodes), HashHits: s.hashHits, MaxDepth: s.maxDepth}
}

// Node returns the node at id.
func (s *Session) Node(id int) *Node {
	return s.nodes[id]
}

// NumNodes returns the total node count.
func (s *Session) NumNodes() int {
	return len(s.nodes)
}

// noteDepth records depth as a new maximum if deeper than any seen so far.
func (s *Session) noteDepth(depth int) {
	if depth > s.maxDepth {
		s.maxDepth = depth
	}
}

// leaf returns (creating if necessary) the node for variable varID,
// keyed by variable id only per spec.md §4.6's node-emission discipline.
func (s *Session) leaf(varID int) int {
	key := fmt.Sprintf("var:%d", varID)
	if id, ok := s.hash[key]; ok {
		s.hashHits++
		return id
	}
	id := len(s.nodes)
	s.nodes = append(s.nodes, &Node{ID: id, IsLeaf: true, VarIndex: varID})
	s.hash[key] = id

	return id
}

// gate returns (creating if necessary) the node for an internal LUT
// with the given local truth table and ordered children, deduplicating
// on (func, children) per spec.md §4.6.
func (s *Session) gate(bits string, children []int) int {
	var b strings.Builder
	b.WriteString(bits)
	b.WriteByte('|')
	for i, c := range children {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", c)
	}
	key := b.String()

	if id, ok := s.hash[key]; ok {
		s.hashHits++
		return id
	}
	id := len(s.nodes)
	s.nodes = append(s.nodes, &Node{ID: id, Bits: bits, Children: append([]int(nil), children...)})
	s.hash[key] = id

	return id
}

// Primitive 2-input and 1-input gate truth tables, MSB-first, following
// the same structural-matrix convention as stpalg.NewStructuralMatrix.
const (
	bitsAnd = "1000"
	bitsOr  = "1110"
	bitsXor = "0110"
	bitsNot = "01"
)
