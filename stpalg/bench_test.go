package stpalg_test

import (
	"testing"

	"github.com/go-stp/stp/stpalg"
)

func BenchmarkChainMultiply_DP(b *testing.B) {
	id2, _ := stpalg.NewIdentity(2)
	swap, _ := stpalg.SwapMatrix2()
	mr, _ := stpalg.PowerReduceMatrix2()
	a, _ := stpalg.NewMatrixFromRows([][]int64{{1, 0, 0, 0}, {0, 1, 1, 1}})
	chain := []*stpalg.Matrix{id2, swap, mr, a, id2, swap}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = stpalg.ChainMultiply(chain, stpalg.WithChainMethod(stpalg.DynamicProgrammingMethod))
	}
}

func BenchmarkSTP_Copy(b *testing.B) {
	a, _ := stpalg.NewMatrixFromRows([][]int64{{1, 0, 0, 0}, {0, 1, 1, 1}})
	bm, _ := stpalg.NewMatrixFromRows([][]int64{{1, 1, 0, 1}, {0, 0, 1, 0}})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = stpalg.STP(a, bm, stpalg.WithStrategy(stpalg.CopyStrategy))
	}
}
