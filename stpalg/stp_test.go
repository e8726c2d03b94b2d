package stpalg_test

import (
	"testing"

	"github.com/go-stp/stp/stpalg"
	"github.com/stretchr/testify/require"
)

// TestSTP_ConcreteScenario covers spec.md §8 scenario 1.
func TestSTP_ConcreteScenario(t *testing.T) {
	t.Parallel()

	a, err := stpalg.NewMatrixFromRows([][]int64{{1, 0, 0, 0}, {0, 1, 1, 1}})
	require.NoError(t, err)
	b, err := stpalg.NewMatrixFromRows([][]int64{{1, 1, 0, 1}, {0, 0, 1, 0}})
	require.NoError(t, err)

	got, err := stpalg.STP(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, got.Rows())
	require.Equal(t, 8, got.Cols())
}

// TestSTP_MethodsAgree checks the Copy and Native strategies produce
// bit-identical results (spec.md §8 "STP methods agree").
func TestSTP_MethodsAgree(t *testing.T) {
	t.Parallel()

	a, err := stpalg.NewMatrixFromRows([][]int64{{1, 0, 0, 0}, {0, 1, 1, 1}})
	require.NoError(t, err)
	b, err := stpalg.NewMatrixFromRows([][]int64{{1, 1, 0, 1}, {0, 0, 1, 0}})
	require.NoError(t, err)

	copyRes, err := stpalg.STP(a, b, stpalg.WithStrategy(stpalg.CopyStrategy))
	require.NoError(t, err)
	nativeRes, err := stpalg.STP(a, b, stpalg.WithStrategy(stpalg.NativeStrategy))
	require.NoError(t, err)

	require.True(t, copyRes.Equal(nativeRes))
}

// TestSTP_ShapeMismatch exercises the failure mode when neither
// divisibility relation holds.
func TestSTP_ShapeMismatch(t *testing.T) {
	t.Parallel()

	a, err := stpalg.NewMatrix(2, 3)
	require.NoError(t, err)
	b, err := stpalg.NewMatrix(5, 2)
	require.NoError(t, err)

	_, err = stpalg.STP(a, b)
	require.ErrorIs(t, err, stpalg.ErrShapeMismatch)
}

// TestSTP_Associativity checks bounded associativity for three small
// matrices (spec.md §8).
func TestSTP_Associativity(t *testing.T) {
	t.Parallel()

	a, err := stpalg.NewMatrixFromRows([][]int64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	b, err := stpalg.NewMatrixFromRows([][]int64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	c, err := stpalg.NewMatrixFromRows([][]int64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	ab, err := stpalg.STP(a, b)
	require.NoError(t, err)
	left, err := stpalg.STP(ab, c)
	require.NoError(t, err)

	bc, err := stpalg.STP(b, c)
	require.NoError(t, err)
	right, err := stpalg.STP(a, bc)
	require.NoError(t, err)

	require.True(t, left.Equal(right))
}

// TestSwapIdentity checks stp(W(2,2), stp(B,A)) == stp(A,B) for 2×1
// column vectors (spec.md §8).
func TestSwapIdentity(t *testing.T) {
	t.Parallel()

	x, err := stpalg.NewMatrixFromRows([][]int64{{1}, {0}})
	require.NoError(t, err)
	y, err := stpalg.NewMatrixFromRows([][]int64{{0}, {1}})
	require.NoError(t, err)

	w, err := stpalg.SwapMatrix2()
	require.NoError(t, err)

	yx, err := stpalg.STP(y, x)
	require.NoError(t, err)
	lhs, err := stpalg.STP(w, yx)
	require.NoError(t, err)

	rhs, err := stpalg.STP(x, y)
	require.NoError(t, err)

	require.True(t, lhs.Equal(rhs))
}

// TestPowerReduceIdentity checks stp(Mr(2), x) == stp(x, x) for a basis
// column x (spec.md §8).
func TestPowerReduceIdentity(t *testing.T) {
	t.Parallel()

	x, err := stpalg.NewMatrixFromRows([][]int64{{1}, {0}})
	require.NoError(t, err)

	mr, err := stpalg.PowerReduceMatrix2()
	require.NoError(t, err)

	lhs, err := stpalg.STP(mr, x)
	require.NoError(t, err)

	rhs, err := stpalg.STP(x, x)
	require.NoError(t, err)

	require.True(t, lhs.Equal(rhs))
}
