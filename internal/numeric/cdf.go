package numeric

import "math"

// NormalCDF evaluates the cumulative distribution function of the normal
// distribution with mean mu and standard deviation sigma:
//
//	F(x) = (1 + erf((x - mu) / (sigma*sqrt(2)))) / 2
//
// sigma is not bounds-checked: a zero or negative sigma propagates NaN/Inf
// through the formula rather than returning an error. Callers own parameter
// validation.
func NormalCDF(x, mu, sigma float64) float64 {
	arg := (x - mu) / (sigma * math.Sqrt2)
	return (1 + Erf(arg)) / 2
}

// NormalCDFSlice applies NormalCDF elementwise.
func NormalCDFSlice(x []float64, mu, sigma float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = NormalCDF(v, mu, sigma)
	}
	return out
}

// LogNormalCDF evaluates the cumulative distribution function of the
// log-normal distribution parameterized by its median (exp of the mean of
// log x) and log-space standard deviation sigma. Non-positive x yields NaN
// via the logarithm, matching the fail-open behavior of NormalCDF.
func LogNormalCDF(x, median, sigma float64) float64 {
	return NormalCDF(math.Log(x), math.Log(median), sigma)
}

// LogNormalCDFSlice applies LogNormalCDF elementwise.
func LogNormalCDFSlice(x []float64, median, sigma float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = LogNormalCDF(v, median, sigma)
	}
	return out
}
