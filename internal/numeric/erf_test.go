package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// erfTol is the documented fractional error bound of the Chebyshev
// approximation.
const erfTol = 1.2e-7

func TestErf_ReferenceValues(t *testing.T) {
	// Reference values of the true error function.
	tests := []struct {
		z        float64
		expected float64
	}{
		{0, 0},
		{0.5, 0.5204998778130465},
		{1, 0.8427007929497149},
		{2, 0.9953222650189527},
		{3, 0.9999779095030014},
		{-1, -0.8427007929497149},
		{-2, -0.9953222650189527},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, Erf(tt.z), erfTol, "erf(%v)", tt.z)
	}
}

func TestErf_OddSymmetry(t *testing.T) {
	// The approximation is evaluated on |z| and extended by sign, so odd
	// symmetry holds exactly, not just within tolerance.
	for _, z := range []float64{0.1, 0.7, 1.3, 2.9, 5.0, 17.0} {
		assert.Equal(t, Erf(z), -Erf(-z), "z=%v", z)
	}
}

func TestErf_Saturation(t *testing.T) {
	assert.InDelta(t, 1.0, Erf(10), erfTol)
	assert.InDelta(t, -1.0, Erf(-10), erfTol)
}

func TestErf_NaNPropagates(t *testing.T) {
	assert.True(t, math.IsNaN(Erf(math.NaN())))
}

func TestErfSlice_MatchesScalar(t *testing.T) {
	zs := []float64{-2.5, -1, -0.1, 0, 0.1, 1, 2.5}

	out := ErfSlice(zs)
	require.Len(t, out, len(zs))
	for i, z := range zs {
		assert.Equal(t, Erf(z), out[i], "z=%v", z)
	}

	// Single-element slice agrees with the scalar entry point.
	single := ErfSlice([]float64{0.25})
	require.Len(t, single, 1)
	assert.Equal(t, Erf(0.25), single[0])
}

func TestErfSlice_EmptyInput(t *testing.T) {
	assert.Empty(t, ErfSlice(nil))
}
