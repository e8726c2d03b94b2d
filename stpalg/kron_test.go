package stpalg_test

import (
	"testing"

	"github.com/go-stp/stp/stpalg"
	"github.com/stretchr/testify/require"
)

func TestKron_IdentityNeutral(t *testing.T) {
	t.Parallel()

	one, err := stpalg.NewMatrix(1, 1)
	require.NoError(t, err)
	require.NoError(t, one.Set(0, 0, 1))

	a, err := stpalg.NewMatrixFromRows([][]int64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	got, err := stpalg.Kron(one, a)
	require.NoError(t, err)
	require.True(t, got.Equal(a))

	got, err = stpalg.Kron(a, one)
	require.NoError(t, err)
	require.True(t, got.Equal(a))
}

func TestKron_Shape(t *testing.T) {
	t.Parallel()

	a, err := stpalg.NewMatrixFromRows([][]int64{{1, 0}})
	require.NoError(t, err)
	b, err := stpalg.NewMatrixFromRows([][]int64{{0, 1}, {1, 0}})
	require.NoError(t, err)

	got, err := stpalg.Kron(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, got.Rows())
	require.Equal(t, 4, got.Cols())
}
