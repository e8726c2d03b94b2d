package circuit_test

import (
	"testing"

	"github.com/go-stp/stp/circuit"
	"github.com/stretchr/testify/require"
)

func TestCreatePI_Idempotent(t *testing.T) {
	t.Parallel()

	c := circuit.NewCircuit()
	id1, err := c.CreatePI("a")
	require.NoError(t, err)
	id2, err := c.CreatePI("a")
	require.NoError(t, err)
	require.Equal(t, id1, id2)
	require.Len(t, c.Inputs(), 1)
}

func TestCreateNode_OnPrimaryInput(t *testing.T) {
	t.Parallel()

	c := circuit.NewCircuit()
	_, err := c.CreatePI("a")
	require.NoError(t, err)
	_, err = c.CreatePI("b")
	require.NoError(t, err)
	_, err = c.CreateNode("a", []string{"b"}, "1")
	require.Error(t, err)
}

func TestCreateNode_NoInputs(t *testing.T) {
	t.Parallel()

	c := circuit.NewCircuit()
	_, err := c.CreateNode("g", nil, "1")
	require.ErrorIs(t, err, circuit.ErrNoInputs)
}

func TestCreateNode_AlreadyDefined(t *testing.T) {
	t.Parallel()

	c := circuit.NewCircuit()
	_, err := c.CreatePI("a")
	require.NoError(t, err)
	_, err = c.CreatePI("b")
	require.NoError(t, err)
	_, err = c.CreateNode("g", []string{"a", "b"}, "8")
	require.NoError(t, err)
	_, err = c.CreateNode("g", []string{"a", "b"}, "8")
	require.ErrorIs(t, err, circuit.ErrAlreadyDefined)
}

func TestCreateNode_InputsReversed(t *testing.T) {
	t.Parallel()

	c := circuit.NewCircuit()
	_, err := c.CreatePI("a")
	require.NoError(t, err)
	_, err = c.CreatePI("b")
	require.NoError(t, err)
	gid, err := c.CreateNode("g", []string{"a", "b"}, "8")
	require.NoError(t, err)

	n, err := c.Node(gid)
	require.NoError(t, err)
	require.Len(t, n.Inputs, 2)
	bID, err := c.NodeByName("b")
	require.NoError(t, err)
	aID, err := c.NodeByName("a")
	require.NoError(t, err)
	require.Equal(t, bID, n.Inputs[0].NodeID)
	require.Equal(t, aID, n.Inputs[1].NodeID)
}

func TestUpdateLevels_Simple(t *testing.T) {
	t.Parallel()

	c := circuit.NewCircuit()
	_, err := c.CreatePI("a")
	require.NoError(t, err)
	_, err = c.CreatePI("b")
	require.NoError(t, err)
	gid, err := c.CreateNode("g", []string{"a", "b"}, "8")
	require.NoError(t, err)
	_, err = c.CreatePO("g")
	require.NoError(t, err)

	require.NoError(t, c.UpdateLevels())

	n, err := c.Node(gid)
	require.NoError(t, err)
	require.Equal(t, 1, n.Level)
}

func TestUpdateLevels_CycleDetected(t *testing.T) {
	t.Parallel()

	c := circuit.NewCircuit()
	// Build a 2-node cycle by hand via two CreateNode calls that refer
	// to each other's output names as inputs.
	_, err := c.CreateNode("x", []string{"y"}, "1")
	require.NoError(t, err)
	_, err = c.CreateNode("y", []string{"x"}, "1")
	require.NoError(t, err)

	err = c.UpdateLevels()
	require.ErrorIs(t, err, circuit.ErrCycleDetected)
}

func TestPreorder_NestedComposition(t *testing.T) {
	t.Parallel()

	c := circuit.NewCircuit()
	for _, v := range []string{"x1", "x2", "x3"} {
		_, err := c.CreatePI(v)
		require.NoError(t, err)
	}
	_, err := c.CreateNode("or23", []string{"x2", "x3"}, "e")
	require.NoError(t, err)
	andID, err := c.CreateNode("and1or", []string{"x1", "or23"}, "8")
	require.NoError(t, err)

	order, err := c.Preorder(andID)
	require.NoError(t, err)
	require.Len(t, order, 5) // and1or, or23(reversed-first slot), x1, x2, x3 in some valid preorder
}

func TestNodeNotFound(t *testing.T) {
	t.Parallel()

	c := circuit.NewCircuit()
	_, err := c.Node(42)
	require.ErrorIs(t, err, circuit.ErrNodeNotFound)
	_, err = c.NodeByName("nope")
	require.ErrorIs(t, err, circuit.ErrNodeNotFound)
}
