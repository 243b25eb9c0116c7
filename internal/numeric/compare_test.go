package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllClose(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		name     string
		x        []float64
		y        []float64
		expected bool
	}{
		{"identical values", []float64{1, 2, 3}, []float64{1, 2, 3}, true},
		{"within relative tolerance", []float64{1.0}, []float64{1.0 + 5e-6}, true},
		{"outside relative tolerance", []float64{1.0}, []float64{1.001}, false},
		{"within absolute tolerance near zero", []float64{0}, []float64{5e-9}, true},
		{"matching NaN positions", []float64{1.0, nan}, []float64{1.0, nan}, true},
		{"NaN position mismatch", []float64{1.0, nan}, []float64{1.0, 2.0}, false},
		{"NaN position mismatch reversed", []float64{1.0, 2.0}, []float64{1.0, nan}, false},
		{"all NaN", []float64{nan, nan}, []float64{nan, nan}, true},
		{"length mismatch", []float64{1, 2}, []float64{1, 2, 3}, false},
		{"empty slices", []float64{}, []float64{}, true},
		{"non-NaN values differ despite matching NaNs", []float64{nan, 1.0}, []float64{nan, 9.0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AllClose(tt.x, tt.y))
		})
	}
}

func TestAllClose_SelfComparison(t *testing.T) {
	// x ~ x must hold for any x, including arrays containing NaN.
	xs := [][]float64{
		{0},
		{1.5, -2.5, 1e12},
		{math.NaN()},
		{1.0, math.NaN(), -3.0},
	}
	for _, x := range xs {
		assert.True(t, AllClose(x, x))
	}
}

func TestAllCloseTol_Formula(t *testing.T) {
	// The tolerance is atol + rtol*|y|, asymmetric in x and y.
	assert.True(t, AllCloseTol([]float64{100.1}, []float64{100.0}, 1e-3, 0))
	assert.False(t, AllCloseTol([]float64{100.1}, []float64{100.0}, 1e-6, 0))
	assert.True(t, AllCloseTol([]float64{0.05}, []float64{0.0}, 0, 0.1))
	assert.False(t, AllCloseTol([]float64{0.05}, []float64{0.0}, 0, 0.01))
}

func TestClose_Scalars(t *testing.T) {
	nan := math.NaN()

	assert.True(t, Close(1.0, 1.0))
	assert.True(t, Close(nan, nan))
	assert.False(t, Close(1.0, nan))
	assert.False(t, Close(1.0, 1.1))
	assert.True(t, CloseTol(1.0, 1.1, 0.2, 0))
}
