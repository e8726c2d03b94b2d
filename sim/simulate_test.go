package sim_test

import (
	"testing"

	"github.com/go-stp/stp/circuit"
	"github.com/go-stp/stp/sim"
	"github.com/stretchr/testify/require"
)

func buildXOR3(t *testing.T) *circuit.Circuit {
	t.Helper()

	c := circuit.NewCircuit()
	for _, v := range []string{"x1", "x2", "x3"} {
		_, err := c.CreatePI(v)
		require.NoError(t, err)
	}
	// 3-input XOR, truth table hex "96" (spec.md §8 scenario 6).
	_, err := c.CreateNode("y", []string{"x1", "x2", "x3"}, "96")
	require.NoError(t, err)
	_, err = c.CreatePO("y")
	require.NoError(t, err)

	return c
}

func TestSimulate_XOR3(t *testing.T) {
	t.Parallel()

	c := buildXOR3(t)
	out, err := sim.Simulate(c)
	require.NoError(t, err)
	require.Equal(t, "10010110", out["y"])
}

func TestSimulate_TooManyInputs(t *testing.T) {
	t.Parallel()

	c := circuit.NewCircuit()
	names := make([]string, 31)
	for i := range names {
		names[i] = string(rune('a' + i))
		_, err := c.CreatePI(names[i])
		require.NoError(t, err)
	}

	_, err := sim.Simulate(c)
	require.ErrorIs(t, err, sim.ErrTooManyInputs)
}

func TestSimulate_WithFanoutBoundary(t *testing.T) {
	t.Parallel()

	c := circuit.NewCircuit()
	for _, v := range []string{"a", "b", "c"} {
		_, err := c.CreatePI(v)
		require.NoError(t, err)
	}
	// shared node "ab" fans out to two consumers, forcing a boundary.
	_, err := c.CreateNode("ab", []string{"a", "b"}, "8")
	require.NoError(t, err)
	_, err = c.CreateNode("out1", []string{"ab", "c"}, "8")
	require.NoError(t, err)
	_, err = c.CreateNode("out2", []string{"ab", "c"}, "e")
	require.NoError(t, err)
	_, err = c.CreatePO("out1")
	require.NoError(t, err)
	_, err = c.CreatePO("out2")
	require.NoError(t, err)

	out, err := sim.Simulate(c, sim.WithLimit(1))
	require.NoError(t, err)
	require.Len(t, out["out1"], 8)
	require.Len(t, out["out2"], 8)
}
