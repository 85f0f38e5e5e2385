package stability_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/bravais/specnet/network"
	"github.com/bravais/specnet/specialize"
	"github.com/bravais/specnet/stability"
)

// scale builds the linear coupling x ↦ a·x.
func scale(a float64) network.Coupling {
	return func(x float64) float64 { return a * x }
}

// TestMatrix_LinearCouplings verifies that the stability matrix of
// linear couplings a·x is the matrix of |a| values: the derivative is
// constant, so the sampled supremum is exact.
func TestMatrix_LinearCouplings(t *testing.T) {
	funcs := [][]network.Coupling{
		{scale(0.5), scale(-0.25)},
		{scale(0.25), scale(0.5)},
	}
	g, err := network.New(mat.NewDense(2, 2, []float64{0, 1, 1, 0}),
		network.WithFunctions(funcs))
	require.NoError(t, err)

	df, err := stability.Matrix(g, stability.WithSamples(101))
	require.NoError(t, err)

	assert.InDelta(t, 0.5, df.At(0, 0), 1e-6)
	assert.InDelta(t, 0.25, df.At(0, 1), 1e-6, "negation before max-abs keeps the magnitude")
	assert.InDelta(t, 0.25, df.At(1, 0), 1e-6)
	assert.InDelta(t, 0.5, df.At(1, 1), 1e-6)
}

// TestSpectralRadius_KnownSpectrum checks the radius of a symmetric
// bound matrix with a hand-computable spectrum: [[0.5,0.25],[0.25,0.5]]
// has eigenvalues 0.75 and 0.25.
func TestSpectralRadius_KnownSpectrum(t *testing.T) {
	funcs := [][]network.Coupling{
		{scale(0.5), scale(0.25)},
		{scale(0.25), scale(0.5)},
	}
	g, err := network.New(mat.NewDense(2, 2, []float64{0, 1, 1, 0}),
		network.WithFunctions(funcs))
	require.NoError(t, err)

	radius, err := stability.SpectralRadius(g, stability.WithSamples(101))
	require.NoError(t, err)
	assert.InDelta(t, 0.75, radius, 1e-6)
}

// TestMatrix_NonlinearSup verifies the sampled supremum on a genuinely
// nonlinear coupling: d/dx sin(x) = cos(x) attains |cos| = 1 at x = 0,
// which the default-centered domain samples exactly.
func TestMatrix_NonlinearSup(t *testing.T) {
	funcs := [][]network.Coupling{{math.Sin}}
	g, err := network.New(mat.NewDense(1, 1, nil), network.WithFunctions(funcs))
	require.NoError(t, err)

	df, err := stability.Matrix(g, stability.WithSamples(101))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, df.At(0, 0), 1e-6)
}

// TestMatrix_SpecializedFanOut verifies that copies reuse their original
// node's bound: the stability matrix of a specialized network reads the
// same per-pair suprema through the origin mapping.
func TestMatrix_SpecializedFanOut(t *testing.T) {
	funcs := [][]network.Coupling{
		{scale(0.5), scale(0.25)},
		{scale(0.3), scale(0.7)},
	}
	// One inbound (0→1) and one outbound (1→0) boundary edge.
	g, err := network.New(mat.NewDense(2, 2, []float64{0, 1, 1, 0}),
		network.WithFunctions(funcs))
	require.NoError(t, err)

	s, err := specialize.Specialize(g, specialize.ByIndices(0))
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1.1"}, s.Labels())

	df, err := stability.Matrix(s, stability.WithSamples(101))
	require.NoError(t, err)

	// Node "1.1" resolves to original 1 in both directions.
	assert.InDelta(t, 0.5, df.At(0, 0), 1e-6)
	assert.InDelta(t, 0.25, df.At(0, 1), 1e-6)
	assert.InDelta(t, 0.3, df.At(1, 0), 1e-6)
	assert.InDelta(t, 0.7, df.At(1, 1), 1e-6)
}

// TestStability_Validation covers the configuration and target sentinels.
func TestStability_Validation(t *testing.T) {
	linear, err := network.New(mat.NewDense(2, 2, nil))
	require.NoError(t, err)

	_, err = stability.Matrix(nil)
	assert.ErrorIs(t, err, stability.ErrNilNetwork)

	_, err = stability.Matrix(linear)
	assert.ErrorIs(t, err, stability.ErrLinearSystem)

	funcs := [][]network.Coupling{{scale(1)}}
	g, err := network.New(mat.NewDense(1, 1, nil), network.WithFunctions(funcs))
	require.NoError(t, err)

	_, err = stability.Matrix(g, stability.WithDomain(3, 3))
	assert.ErrorIs(t, err, stability.ErrBadDomain)

	_, err = stability.Matrix(g, stability.WithDomain(0, math.Inf(1)))
	assert.ErrorIs(t, err, stability.ErrBadDomain)

	_, err = stability.Matrix(g, stability.WithSamples(1))
	assert.ErrorIs(t, err, stability.ErrBadSamples)
}
