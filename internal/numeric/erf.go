package numeric

import "math"

// Erf approximates the Gauss error function
//
//	erf(z) = 2/sqrt(pi) * integral(exp(-t*t), t=0..z)
//
// using the Chebyshev fitting formula from Numerical Recipes §6.2. The
// fractional error is below ~1.2e-7, though the result is subject to
// catastrophic cancellation when z is very close to 0.
//
// The nine coefficients and their Horner-form evaluation are preserved
// verbatim: downstream fragility results must stay comparable to reference
// fixtures within the documented error bound, so the formula must not be
// rearranged or simplified.
func Erf(z float64) float64 {
	return erfKernel(z)
}

// ErfSlice applies Erf elementwise, returning a new slice of the same length.
func ErfSlice(z []float64) []float64 {
	out := make([]float64, len(z))
	for i, v := range z {
		out[i] = erfKernel(v)
	}
	return out
}

// erfKernel is the single shared implementation behind the scalar and slice
// entry points.
func erfKernel(z float64) float64 {
	t := 1.0 / (1.0 + 0.5*math.Abs(z))

	ans := 1 - t*math.Exp(-z*z-1.26551223+
		t*(1.00002368+
			t*(0.37409196+
				t*(0.09678418+
					t*(-0.18628806+
						t*(0.27886807+
							t*(-1.13520398+
								t*(1.48851587+
									t*(-0.82215223+
										t*0.17087277)))))))))

	// The approximation holds for z >= 0; erf is odd, so negate for z < 0.
	if z < 0 {
		return -ans
	}
	return ans
}
