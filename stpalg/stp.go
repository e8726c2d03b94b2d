package stpalg

// matMul computes the ordinary matrix product a·b; requires a.Cols ==
// b.Rows.
func matMul(a, b *Matrix) (*Matrix, error) {
	if a.c != b.r {
		return nil, matrixErrorf("matMul", ErrShapeMismatch)
	}
	out, err := NewMatrix(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf("matMul", err)
	}
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			av := a.data[i*a.c+k]
			if av == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				out.data[i*out.c+j] += av * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

// STP computes the semi-tensor product A⋉B (spec.md §4.1). Requires
// a.Cols % b.Rows == 0 or b.Rows % a.Cols == 0. Strategy picks Native
// (tensor-then-multiply) or Copy (block-replication, default); both must
// agree bit-for-bit.
func STP(a, b *Matrix, opts ...Option) (*Matrix, error) {
	o := DefaultOptions(opts...)
	if a == nil || b == nil {
		return nil, matrixErrorf("STP", ErrBadShape)
	}
	n, p := a.c, b.r
	if n%p != 0 && p%n != 0 {
		return nil, matrixErrorf("STP", ErrShapeMismatch)
	}

	switch o.Strategy {
	case NativeStrategy:
		return stpNative(a, b)
	default:
		return stpCopy(a, b)
	}
}

// stpNative implements A⋉B = (A⊗I_{t/n})·(B⊗I_{t/p}) with t = lcm(n,p).
func stpNative(a, b *Matrix) (*Matrix, error) {
	n, p := a.c, b.r
	t := lcm(n, p)
	in, err := NewIdentity(t / n)
	if err != nil {
		return nil, matrixErrorf("STP", err)
	}
	ip, err := NewIdentity(t / p)
	if err != nil {
		return nil, matrixErrorf("STP", err)
	}
	lhs, err := Kron(a, in)
	if err != nil {
		return nil, matrixErrorf("STP", err)
	}
	rhs, err := Kron(b, ip)
	if err != nil {
		return nil, matrixErrorf("STP", err)
	}

	return matMul(lhs, rhs)
}

// stpCopy implements the block-replication strategy (spec.md §4.1): when
// n%p==0, let t=n/p; the m×(t*q) result is built by, for each (i,j) in
// [0,q)×[0,p), adding B(j,i)*A[:, j*t:(j+1)*t] into the i-th width-t block
// of the result. The p%n==0 case is the row-symmetric dual.
func stpCopy(a, b *Matrix) (*Matrix, error) {
	m, n := a.r, a.c
	p, q := b.r, b.c

	if n%p == 0 {
		t := n / p
		out, err := NewMatrix(m, t*q)
		if err != nil {
			return nil, matrixErrorf("STP", err)
		}
		for i := 0; i < q; i++ {
			for j := 0; j < p; j++ {
				bv := b.data[j*q+i]
				if bv == 0 {
					continue
				}
				// Add bv * A[:, j*t:(j+1)*t] into the i-th width-t block.
				for row := 0; row < m; row++ {
					srcBase := row*a.c + j*t
					dstBase := row*out.c + i*t
					for col := 0; col < t; col++ {
						out.data[dstBase+col] += bv * a.data[srcBase+col]
					}
				}
			}
		}

		return out, nil
	}

	// p % n == 0: row-symmetric dual.
	t := p / n
	out, err := NewMatrix(t*m, q)
	if err != nil {
		return nil, matrixErrorf("STP", err)
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			av := a.data[i*n+j]
			if av == 0 {
				continue
			}
			// Add av * B[j*t:(j+1)*t, :] into the i-th height-t block.
			for row := 0; row < t; row++ {
				srcBase := (j*t + row) * b.c
				dstBase := (i*t + row) * out.c
				for col := 0; col < q; col++ {
					out.data[dstBase+col] += av * b.data[srcBase+col]
				}
			}
		}
	}

	return out, nil
}
