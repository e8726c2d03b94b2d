package stpalg

// PowerReduceMatrix returns Mr(k), the k²×k matrix satisfying
// Mr(k)·x = x⊗x for any length-k standard basis column x. Column i has
// its single 1 at row i*k+i (for k=2: rows 0 and 3 are the indicator
// columns, matching spec.md §3).
func PowerReduceMatrix(k int) (*Matrix, error) {
	if k <= 0 {
		return nil, matrixErrorf("PowerReduceMatrix", ErrBadShape)
	}

	out, err := NewMatrix(k*k, k)
	if err != nil {
		return nil, matrixErrorf("PowerReduceMatrix", err)
	}
	for i := 0; i < k; i++ {
		out.data[(i*k+i)*k+i] = 1
	}

	return out, nil
}

// PowerReduceMatrix2 is the common PowerReduce2 special token: Mr(2).
func PowerReduceMatrix2() (*Matrix, error) {
	return PowerReduceMatrix(2)
}
