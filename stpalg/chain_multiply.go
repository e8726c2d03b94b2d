package stpalg

// dpCell records the optimal parenthesization of chain[i..j]: the total
// op count, the split index k such that chain[i..k] ⋉ chain[k+1..j] is
// optimal, and the resulting shape (needed to cost parent ranges without
// re-deriving it).
type dpCell struct {
	cost  int64
	split int
	rows  int
	cols  int
}

// shapeMerge returns the shape of A⋉B given A: m×n, B: p×q, following the
// same divisibility rule STP itself enforces.
func shapeMerge(m, n, p, q int) (int, int, error) {
	if n%p == 0 {
		return m, n * q / p, nil
	}
	if p%n == 0 {
		return m * p / n, q, nil
	}

	return 0, 0, ErrShapeMismatch
}

// stpCost is the number of scalar fused multiply-adds the Copy strategy
// performs to combine shapes (m,n)·(p,q) (spec.md §4.1).
func stpCost(m, n, p, q int) int64 {
	lo, hi := n, p
	if lo > hi {
		lo, hi = hi, lo
	}

	return 3 * int64(m) * int64(q) * int64(hi) * int64(hi/lo)
}

// ChainMultiply computes M_1 ⋉ M_2 ⋉ … ⋉ M_k, either strictly
// left-to-right (SequenceMethod) or via a cost-minimizing dynamic-program
// parenthesization (DynamicProgrammingMethod, the default). STP being
// associative (but not commutative) guarantees both methods agree
// bit-for-bit; only wall-clock differs.
func ChainMultiply(chain []*Matrix, opts ...Option) (*Matrix, error) {
	if len(chain) == 0 {
		return nil, matrixErrorf("ChainMultiply", ErrEmptyChain)
	}
	o := DefaultOptions(opts...)
	if len(chain) == 1 {
		return chain[0].Clone(), nil
	}

	if o.ChainMethod == SequenceMethod {
		return chainMultiplySequence(chain, o)
	}

	return chainMultiplyDP(chain, o)
}

func chainMultiplySequence(chain []*Matrix, o Options) (*Matrix, error) {
	acc := chain[0]
	for i := 1; i < len(chain); i++ {
		next, err := STP(acc, chain[i], WithStrategy(o.Strategy))
		if err != nil {
			return nil, matrixErrorf("ChainMultiply", err)
		}
		acc = next
	}

	return acc, nil
}

func chainMultiplyDP(chain []*Matrix, o Options) (*Matrix, error) {
	n := len(chain)
	dp := make([][]dpCell, n)
	for i := range dp {
		dp[i] = make([]dpCell, n)
	}
	for i := 0; i < n; i++ {
		dp[i][i] = dpCell{cost: 0, rows: chain[i].Rows(), cols: chain[i].Cols()}
	}

	for length := 2; length <= n; length++ {
		for i := 0; i+length-1 < n; i++ {
			j := i + length - 1
			best := dpCell{cost: -1}
			for k := i; k < j; k++ {
				left := dp[i][k]
				right := dp[k+1][j]
				rows, cols, err := shapeMerge(left.rows, left.cols, right.rows, right.cols)
				if err != nil {
					return nil, matrixErrorf("ChainMultiply", err)
				}
				cost := left.cost + right.cost + stpCost(left.rows, left.cols, right.rows, right.cols)
				if best.cost == -1 || cost < best.cost {
					best = dpCell{cost: cost, split: k, rows: rows, cols: cols}
				}
				// Ties broken by the smaller split index: since k increases
				// monotonically here, strict "<" above already keeps the
				// first (smallest-k) minimum.
			}
			dp[i][j] = best
		}
	}

	return evalDP(chain, dp, 0, n-1, o)
}

func evalDP(chain []*Matrix, dp [][]dpCell, i, j int, o Options) (*Matrix, error) {
	if i == j {
		return chain[i].Clone(), nil
	}
	k := dp[i][j].split
	left, err := evalDP(chain, dp, i, k, o)
	if err != nil {
		return nil, err
	}
	right, err := evalDP(chain, dp, k+1, j, o)
	if err != nil {
		return nil, err
	}

	return STP(left, right, WithStrategy(o.Strategy))
}
