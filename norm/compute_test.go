package norm_test

import (
	"testing"

	"github.com/go-stp/stp/circuit"
	"github.com/go-stp/stp/norm"
	"github.com/stretchr/testify/require"
)

func TestCompute_SingleGate(t *testing.T) {
	t.Parallel()

	c := circuit.NewCircuit()
	_, err := c.CreatePI("a")
	require.NoError(t, err)
	_, err = c.CreatePI("b")
	require.NoError(t, err)
	gid, err := c.CreateNode("g", []string{"a", "b"}, "8")
	require.NoError(t, err)

	res, err := norm.Compute(c, gid)
	require.NoError(t, err)
	require.Len(t, res.TruthTable, 4)
}

func TestCompute_CustomOrder(t *testing.T) {
	t.Parallel()

	c := circuit.NewCircuit()
	aID, err := c.CreatePI("a")
	require.NoError(t, err)
	bID, err := c.CreatePI("b")
	require.NoError(t, err)
	gid, err := c.CreateNode("g", []string{"a", "b"}, "8")
	require.NoError(t, err)

	_, err = norm.Compute(c, gid, norm.WithOrder([]int{bID, aID}))
	require.NoError(t, err)
}

func TestCompute_UnknownVariable(t *testing.T) {
	t.Parallel()

	c := circuit.NewCircuit()
	aID, err := c.CreatePI("a")
	require.NoError(t, err)
	_, err = c.CreatePI("b")
	require.NoError(t, err)
	gid, err := c.CreateNode("g", []string{"a", "b"}, "8")
	require.NoError(t, err)

	_, err = norm.Compute(c, gid, norm.WithOrder([]int{aID}))
	require.ErrorIs(t, err, norm.ErrUnknownVariable)
}

func TestCompute_NestedGates(t *testing.T) {
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

	res, err := norm.Compute(c, andID)
	require.NoError(t, err)
	require.Len(t, res.TruthTable, 8)
}

// buildExprCircuit builds (a&b)|(a&~c)|(~b&~c) and returns the PI ids
// and the output gate id.
func buildExprCircuit(t *testing.T) (c *circuit.Circuit, aID, bID, cID, outID int) {
	t.Helper()

	c = circuit.NewCircuit()
	var err error
	aID, err = c.CreatePI("a")
	require.NoError(t, err)
	bID, err = c.CreatePI("b")
	require.NoError(t, err)
	cID, err = c.CreatePI("c")
	require.NoError(t, err)

	_, err = c.CreateNode("not_b", []string{"b"}, "1")
	require.NoError(t, err)
	_, err = c.CreateNode("not_c", []string{"c"}, "1")
	require.NoError(t, err)
	_, err = c.CreateNode("and_ab", []string{"a", "b"}, "8")
	require.NoError(t, err)
	_, err = c.CreateNode("and_a_notc", []string{"a", "not_c"}, "8")
	require.NoError(t, err)
	_, err = c.CreateNode("and_notb_notc", []string{"not_b", "not_c"}, "8")
	require.NoError(t, err)
	_, err = c.CreateNode("or1", []string{"and_ab", "and_a_notc"}, "e")
	require.NoError(t, err)
	outID, err = c.CreateNode("y", []string{"or1", "and_notb_notc"}, "e")
	require.NoError(t, err)

	return c, aID, bID, cID, outID
}

// TestCompute_OrderCBA checks the documented hex-8B scenario: variable
// order [c,b,a] (MSB first) on (a&b)|(a&~c)|(~b&~c).
func TestCompute_OrderCBA(t *testing.T) {
	t.Parallel()

	c, aID, bID, cID, outID := buildExprCircuit(t)

	res, err := norm.Compute(c, outID, norm.WithOrder([]int{cID, bID, aID}))
	require.NoError(t, err)
	require.Equal(t, "10001011", res.TruthTable) // hex 8B
}

// TestCompute_OrderABC checks the documented hex-D1 scenario: the same
// expression reordered to [a,b,c].
func TestCompute_OrderABC(t *testing.T) {
	t.Parallel()

	c, aID, bID, cID, outID := buildExprCircuit(t)

	res, err := norm.Compute(c, outID, norm.WithOrder([]int{aID, bID, cID}))
	require.NoError(t, err)
	require.Equal(t, "11010001", res.TruthTable) // hex D1
}
