package stpalg_test

import (
	"testing"

	"github.com/go-stp/stp/stpalg"
	"github.com/stretchr/testify/require"
)

func TestChainMultiply_EmptyChain(t *testing.T) {
	t.Parallel()

	_, err := stpalg.ChainMultiply(nil)
	require.ErrorIs(t, err, stpalg.ErrEmptyChain)
}

func TestChainMultiply_SingleElement(t *testing.T) {
	t.Parallel()

	m, err := stpalg.NewMatrixFromRows([][]int64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	got, err := stpalg.ChainMultiply([]*stpalg.Matrix{m})
	require.NoError(t, err)
	require.True(t, got.Equal(m))
}

// TestChainMultiply_MethodsAgree checks the Sequence and
// DynamicProgramming evaluation orders produce bit-identical results
// (spec.md §8 "Chain method agreement").
func TestChainMultiply_MethodsAgree(t *testing.T) {
	t.Parallel()

	id2, err := stpalg.NewIdentity(2)
	require.NoError(t, err)
	swap, err := stpalg.SwapMatrix2()
	require.NoError(t, err)
	mr, err := stpalg.PowerReduceMatrix2()
	require.NoError(t, err)
	a, err := stpalg.NewMatrixFromRows([][]int64{{1, 0, 0, 0}, {0, 1, 1, 1}})
	require.NoError(t, err)

	chain := []*stpalg.Matrix{id2, swap, mr, a}

	seq, err := stpalg.ChainMultiply(chain, stpalg.WithChainMethod(stpalg.SequenceMethod))
	require.NoError(t, err)
	dp, err := stpalg.ChainMultiply(chain, stpalg.WithChainMethod(stpalg.DynamicProgrammingMethod))
	require.NoError(t, err)

	require.True(t, seq.Equal(dp))
}
