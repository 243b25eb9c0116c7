package numeric

import "math"

// Default tolerances for approximate comparison, matching the conventional
// allclose parameters.
const (
	DefaultRTol = 1.0e-5
	DefaultATol = 1.0e-8
)

// Close reports approximate equality of two scalars with default tolerances.
// Two NaNs are considered equal; one NaN is not.
func Close(x, y float64) bool {
	return CloseTol(x, y, DefaultRTol, DefaultATol)
}

// CloseTol is Close with explicit tolerances.
func CloseTol(x, y, rtol, atol float64) bool {
	return AllCloseTol([]float64{x}, []float64{y}, rtol, atol)
}

// AllClose reports NaN-aware elementwise approximate equality of two slices
// with default tolerances.
func AllClose(x, y []float64) bool {
	return AllCloseTol(x, y, DefaultRTol, DefaultATol)
}

// AllCloseTol compares x and y elementwise within tolerance, excluding
// positions where both are NaN.
//
// NaN presence must match positionally: if one side is NaN where the other
// is not, the slices are not close. When every position of both is NaN the
// result is true (all comparable elements vacuously agree). The remaining
// positions must all satisfy |x - y| <= atol + rtol*|y|.
func AllCloseTol(x, y []float64, rtol, atol float64) bool {
	if len(x) != len(y) {
		return false
	}

	for i := range x {
		xn := math.IsNaN(x[i])
		yn := math.IsNaN(y[i])
		if xn != yn {
			return false
		}
		if xn {
			// Both NaN: excluded from the tolerance check. All-NaN input
			// therefore compares equal.
			continue
		}
		if math.Abs(x[i]-y[i]) > atol+rtol*math.Abs(y[i]) {
			return false
		}
	}
	return true
}
