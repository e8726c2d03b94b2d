package chain

import "github.com/go-stp/stp/stpalg"

// Result holds the outcome of Normalize: the canonical 2×2ⁿ row matrix
// and its row-0 truth-table string.
type Result struct {
	Row        *stpalg.Matrix
	TruthTable string
}

// Normalize rewrites c into canonical form (spec.md §4.2, steps 1-5) and
// evaluates it (step 6) to produce the function's truth table under the
// target order already encoded in each KindVar token's Rank.
//
// opts configures the underlying stpalg evaluation (STP strategy, chain
// method); see stpalg.Option.
func Normalize(c Chain, opts ...stpalg.Option) (Result, error) {
	if len(c) == 0 {
		return Result{}, ErrEmptyChain
	}

	// Step 1: right-align. Separate operator tokens (padded with an
	// Identity prefix sized to the variable count seen so far) from the
	// variable tail, preserving left-to-right order in both streams.
	ops, tail := rightAlign(c)

	// Steps 2-3: sort the tail to ascending Rank via insertion-sort
	// adjacent swaps, inserting a padded Swap2 into ops per swap.
	insertionSortWithSwaps(tail, &ops)

	// Step 4: power-reduce runs of equal adjacent variables.
	tail = powerReduce(tail, &ops)

	// Step 5: concretize — fold Identity prefixes into the operator they
	// precede, expand remaining Special tokens to concrete matrices.
	concrete, err := concretize(ops)
	if err != nil {
		return Result{}, err
	}

	// Step 6: evaluate. The concrete operator-only chain's STP product is
	// already 2×2ⁿ (n = distinct variable count); the variable tail is
	// bookkeeping only and contributes no further computation.
	row, err := stpalg.ChainMultiply(concrete, opts...)
	if err != nil {
		return Result{}, err
	}
	if row.Rows() != 2 || row.Cols() != 1<<uint(len(tail)) {
		return Result{}, ErrNotFullyReduced
	}
	tt, err := row.Row0String()
	if err != nil {
		return Result{}, err
	}

	return Result{Row: row, TruthTable: tt}, nil
}

// rightAlign implements spec.md §4.2 step 1.
func rightAlign(c Chain) ([]Token, []int) {
	ops := make([]Token, 0, len(c))
	tail := make([]int, 0, len(c))

	for _, tok := range c {
		if tok.isVar() {
			tail = append(tail, tok.Rank)
			continue
		}
		if len(tail) > 0 {
			ops = append(ops, IdentityToken(1<<uint(len(tail))))
		}
		ops = append(ops, tok)
	}

	return ops, tail
}

// insertionSortWithSwaps sorts tail ascending in place via adjacent
// transpositions, appending a padded Swap2 to *ops for every swap
// performed (spec.md §4.2 steps 2-3).
func insertionSortWithSwaps(tail []int, ops *[]Token) {
	for i := 1; i < len(tail); i++ {
		for j := i; j > 0 && tail[j-1] > tail[j]; j-- {
			if j-1 > 0 {
				*ops = append(*ops, IdentityToken(1<<uint(j-1)))
			}
			*ops = append(*ops, Swap2Token())
			tail[j-1], tail[j] = tail[j], tail[j-1]
		}
	}
}

// powerReduce collapses contiguous runs of equal variables in the
// (already-sorted) tail to a single representative, appending a padded
// PowerReduce2 per collapse (spec.md §4.2 step 4). Returns the reduced
// tail, one entry per distinct variable, still ascending.
func powerReduce(tail []int, ops *[]Token) []int {
	if len(tail) == 0 {
		return tail
	}

	reduced := make([]int, 0, len(tail))
	varsToLeft := 0
	i := 0
	for i < len(tail) {
		j := i
		for j+1 < len(tail) && tail[j+1] == tail[i] {
			j++
		}
		runLen := j - i + 1
		for k := 0; k < runLen-1; k++ {
			if varsToLeft > 0 {
				*ops = append(*ops, IdentityToken(1<<uint(varsToLeft)))
			}
			*ops = append(*ops, PowerReduce2Token())
		}
		reduced = append(reduced, tail[i])
		varsToLeft++
		i = j + 1
	}

	return reduced
}

// concretize implements spec.md §4.2 step 5: fold each IdentityPow2
// token into the operator it immediately precedes, and materialize
// remaining Special tokens.
func concretize(ops []Token) ([]*stpalg.Matrix, error) {
	out := make([]*stpalg.Matrix, 0, len(ops))
	for i := 0; i < len(ops); i++ {
		tok := ops[i]
		if tok.Kind == KindSpecial && tok.Special == SpecialIdentityPow2 {
			// An Identity token is always immediately followed by the
			// operator it pads (rightAlign/insertionSortWithSwaps/
			// powerReduce never emit a trailing bare Identity).
			if i+1 >= len(ops) {
				return nil, ErrNotFullyReduced
			}
			id, err := stpalg.NewIdentity(tok.Dim)
			if err != nil {
				return nil, err
			}
			next, err := ops[i+1].concreteMatrix()
			if err != nil {
				return nil, err
			}
			folded, err := stpalg.Kron(id, next)
			if err != nil {
				return nil, err
			}
			out = append(out, folded)
			i++ // consume the paired operator
			continue
		}
		m, err := tok.concreteMatrix()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, nil
}
