package decomp

import (
	"fmt"
)

func decompErrorf(op string, err error) error {
	return fmt.Errorf("decomp: %s: %w", op, err)
}

// defaultVars returns the canonical variable id list 1..n for a
// top-level call over an n-variable truth table.
func defaultVars(n int) []int {
	vars := make([]int, n)
	for i := range vars {
		vars[i] = i + 1
	}

	return vars
}

// Decompose builds a decomposition DAG for f using o.Mode (default
// StpDsd; BiDec and LutHybrid66 dispatch to the same recognizers
// BiDecompose and Decompose66 use) and returns a fresh Session plus the
// id of the root node.
func Decompose(f string, opts ...Option) (*Session, int, error) {
	if !validTruthTable(f) {
		return nil, 0, decompErrorf("Decompose", ErrBadTruthTable)
	}
	if n := log2(len(f)); n > 30 {
		return nil, 0, decompErrorf("Decompose", ErrUnsupportedSize)
	}

	o := DefaultOptions(opts...)
	s := NewSession()
	n := log2(len(f))
	root, err := decomposeValue(s, f, defaultVars(n), 0, o)
	if err != nil {
		return nil, 0, decompErrorf("Decompose", err)
	}

	return s, root, nil
}

// BiDecompose builds a decomposition DAG for f using bi-decomposition
// throughout (o.Mode is overridden to BiDec).
func BiDecompose(f string, opts ...Option) (*Session, int, error) {
	if !validTruthTable(f) {
		return nil, 0, decompErrorf("BiDecompose", ErrBadTruthTable)
	}
	if n := log2(len(f)); n > 30 {
		return nil, 0, decompErrorf("BiDecompose", ErrUnsupportedSize)
	}

	opts = append(append([]Option{}, opts...), WithMode(BiDec))
	o := DefaultOptions(opts...)
	s := NewSession()
	n := log2(len(f))
	root, err := decomposeValue(s, f, defaultVars(n), 0, o)
	if err != nil {
		return nil, 0, decompErrorf("BiDecompose", err)
	}

	return s, root, nil
}

// Decompose66 builds a decomposition DAG for f using the 66-LUT hybrid
// mode (o.Mode is overridden to LutHybrid66).
func Decompose66(f string, opts ...Option) (*Session, int, error) {
	if !validTruthTable(f) {
		return nil, 0, decompErrorf("Decompose66", ErrBadTruthTable)
	}
	if n := log2(len(f)); n > 30 {
		return nil, 0, decompErrorf("Decompose66", ErrUnsupportedSize)
	}

	opts = append(append([]Option{}, opts...), WithMode(LutHybrid66))
	o := DefaultOptions(opts...)
	s := NewSession()
	n := log2(len(f))
	root, err := decomposeValue(s, f, defaultVars(n), 0, o)
	if err != nil {
		return nil, 0, decompErrorf("Decompose66", err)
	}

	return s, root, nil
}

// Evaluate reads s's DAG rooted at id back into a truth-table string
// over n variables (spec.md §8 "DEC round-trip" property); primarily
// useful for tests.
func Evaluate(s *Session, id int, n int) string {
	width := 1 << uint(n)
	out := make([]byte, width)
	for i := 0; i < width; i++ {
		v := width - 1 - i
		assign := make(map[int]byte, n)
		for varID := 1; varID <= n; varID++ {
			assign[varID] = byte((v >> uint(n-varID)) & 1)
		}
		out[i] = evalNode(s, id, assign) + '0'
	}

	return string(out)
}

func evalNode(s *Session, id int, assign map[int]byte) byte {
	node := s.Node(id)
	if node.IsLeaf {
		return assign[node.VarIndex]
	}

	idx := 0
	for _, c := range node.Children {
		idx = idx<<1 | int(evalNode(s, c, assign))
	}
	pos := (1 << uint(len(node.Children))) - 1 - idx

	return node.Bits[pos] - '0'
}
