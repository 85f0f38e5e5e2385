package network_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/bravais/specnet/network"
)

// newDense is a small helper building an n×n dense adjacency.
func newDense(n int, data []float64) *mat.Dense {
	return mat.NewDense(n, n, data)
}

// TestNew_ValidatesShape covers nil, non-square and NaN/Inf inputs.
func TestNew_ValidatesShape(t *testing.T) {
	_, err := network.New(nil)
	assert.ErrorIs(t, err, network.ErrNilAdjacency)

	_, err = network.New(mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, network.ErrNonSquare)

	_, err = network.New(newDense(2, []float64{0, math.NaN(), 0, 0}))
	assert.ErrorIs(t, err, network.ErrBadWeight)

	_, err = network.New(newDense(2, []float64{0, math.Inf(1), 0, 0}))
	assert.ErrorIs(t, err, network.ErrBadWeight)
}

// TestNew_DefaultsAndLabels verifies default 0-indexed labeling and
// explicit label attachment.
func TestNew_DefaultsAndLabels(t *testing.T) {
	g, err := network.New(newDense(2, []float64{0, 1, 0, 0}))
	require.NoError(t, err)
	assert.Equal(t, 2, g.N())
	assert.Equal(t, []string{"0", "1"}, g.Labels())

	g, err = network.New(newDense(2, []float64{0, 1, 0, 0}), network.WithLabels("a", "b"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, g.Labels())

	_, err = network.New(newDense(2, nil), network.WithLabels("a"))
	assert.ErrorIs(t, err, network.ErrBadLabels)
}

// TestNetwork_Weight verifies the (row=target, col=source) convention and
// range checking.
func TestNetwork_Weight(t *testing.T) {
	// Edge 1→0 with weight 2: stored at A[0,1].
	g, err := network.New(newDense(2, []float64{0, 2, 0, 0}))
	require.NoError(t, err)

	w, err := g.Weight(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)

	w, err = g.Weight(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, w)

	_, err = g.Weight(2, 0)
	assert.ErrorIs(t, err, network.ErrOutOfRange)
}

// TestNew_FunctionalMatrix covers shape validation and the
// functions/origin exclusivity rule.
func TestNew_FunctionalMatrix(t *testing.T) {
	id := network.Coupling(func(x float64) float64 { return x })
	funcs := [][]network.Coupling{{id, id}, {id, id}}

	g, err := network.New(newDense(2, nil), network.WithFunctions(funcs))
	require.NoError(t, err)
	assert.False(t, g.Origin().Linear())
	assert.Equal(t, 2, g.Origin().N0())

	// Wrong grid size for a 3-node network.
	_, err = network.New(newDense(3, nil), network.WithFunctions(funcs))
	assert.ErrorIs(t, err, network.ErrBadFuncMatrix)

	// Nil entry inside the grid.
	broken := [][]network.Coupling{{id, nil}, {id, id}}
	_, err = network.New(newDense(2, nil), network.WithFunctions(broken))
	assert.ErrorIs(t, err, network.ErrBadFuncMatrix)

	// Functions and origin are mutually exclusive.
	_, err = network.New(newDense(2, nil),
		network.WithFunctions(funcs),
		network.WithOrigin(g.Origin()),
	)
	assert.ErrorIs(t, err, network.ErrOriginConflict)
}

// TestNetwork_LinearOriginDefaults verifies that a network built without
// functions is its own linear original.
func TestNetwork_LinearOriginDefaults(t *testing.T) {
	g, err := network.New(newDense(2, nil), network.WithLabels("a", "b"))
	require.NoError(t, err)

	assert.True(t, g.Origin().Linear())
	assert.Equal(t, 2, g.Origin().N0())
	_, err = g.Origin().Func(0, 0)
	assert.ErrorIs(t, err, network.ErrNoFunctions)

	i, err := g.Origin().Resolve("b")
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	_, err = g.Origin().Resolve("z")
	assert.ErrorIs(t, err, network.ErrOriginLookup)
}

// TestNetwork_OriginalIndex verifies canonical resolution for both
// unsuffixed and copy-suffixed labels through a shared origin handle.
func TestNetwork_OriginalIndex(t *testing.T) {
	orig, err := network.New(newDense(2, nil), network.WithLabels("x", "y"))
	require.NoError(t, err)

	// A derived network with a copy-suffixed label sharing the handle.
	derived, err := network.New(newDense(2, nil),
		network.WithLabels("x", "y.1"),
		network.WithOrigin(orig.Origin()),
	)
	require.NoError(t, err)
	assert.Same(t, orig.Origin(), derived.Origin(), "the handle is shared by reference")

	i, err := derived.OriginalIndex(0)
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	i, err = derived.OriginalIndex(1)
	require.NoError(t, err)
	assert.Equal(t, 1, i, "y.1 must resolve through canonical label y")

	_, err = derived.OriginalIndex(5)
	assert.ErrorIs(t, err, network.ErrUnknownIndex)
}

// TestNetwork_OriginalIndexLookupFailure verifies that a label with no
// canonical counterpart surfaces as ErrOriginLookup — the internal
// consistency failure mode.
func TestNetwork_OriginalIndexLookupFailure(t *testing.T) {
	orig, err := network.New(newDense(2, nil), network.WithLabels("x", "y"))
	require.NoError(t, err)

	stray, err := network.New(newDense(1, []float64{0}),
		network.WithLabels("ghost.1"),
		network.WithOrigin(orig.Origin()),
	)
	require.NoError(t, err)

	_, err = stray.OriginalIndex(0)
	assert.ErrorIs(t, err, network.ErrOriginLookup)
}
