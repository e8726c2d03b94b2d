package stpalg

// Kron returns the Kronecker product A⊗B: a block matrix of shape
// (A.Rows*B.Rows)×(A.Cols*B.Cols) where block (i,j) is A[i,j]*B.
//
// When either operand is the 1×1 matrix, the other is returned unchanged
// (cloned, to preserve value semantics) — the Kronecker-product neutral
// element.
//
// Complexity: O(nnz(result)); structural matrices have exactly one nonzero
// per column, so in practice this is linear in the output size rather than
// quadratic in the naive sense.
func Kron(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf("Kron", ErrBadShape)
	}
	if a.r == 1 && a.c == 1 {
		return b.Clone(), nil
	}
	if b.r == 1 && b.c == 1 {
		return a.Clone(), nil
	}

	out, err := NewMatrix(a.r*b.r, a.c*b.c)
	if err != nil {
		return nil, matrixErrorf("Kron", err)
	}

	// Exploit sparsity: skip zero entries of A entirely.
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			av := a.data[i*a.c+j]
			if av == 0 {
				continue
			}
			baseRow := i * b.r
			baseCol := j * b.c
			for bi := 0; bi < b.r; bi++ {
				for bj := 0; bj < b.c; bj++ {
					bv := b.data[bi*b.c+bj]
					if bv == 0 {
						continue
					}
					out.data[(baseRow+bi)*out.c+(baseCol+bj)] = av * bv
				}
			}
		}
	}

	return out, nil
}
