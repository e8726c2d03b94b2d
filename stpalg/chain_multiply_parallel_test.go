package stpalg_test

import (
	"testing"

	"github.com/go-stp/stp/stpalg"
	"github.com/stretchr/testify/require"
)

func TestChainMultiplyParallel_AgreesWithSequential(t *testing.T) {
	t.Parallel()

	gate, err := stpalg.NewStructuralMatrix("1000")
	require.NoError(t, err)
	id2, err := stpalg.NewIdentity(2)
	require.NoError(t, err)

	chain := []*stpalg.Matrix{gate, id2, gate, id2, gate, id2, gate, id2}

	want, err := stpalg.ChainMultiply(chain)
	require.NoError(t, err)

	got, err := stpalg.ChainMultiplyParallel(chain, 4)
	require.NoError(t, err)
	require.True(t, want.Equal(got))
}

func TestChainMultiplyParallel_ShortChainFallsBackToSequential(t *testing.T) {
	t.Parallel()

	gate, err := stpalg.NewStructuralMatrix("1000")
	require.NoError(t, err)

	got, err := stpalg.ChainMultiplyParallel([]*stpalg.Matrix{gate}, 8)
	require.NoError(t, err)
	require.True(t, gate.Equal(got))
}

func TestChainMultiplyParallel_EmptyChain(t *testing.T) {
	t.Parallel()

	_, err := stpalg.ChainMultiplyParallel(nil, 4)
	require.ErrorIs(t, err, stpalg.ErrEmptyChain)
}
