// Package numeric provides the numerically careful array and statistics
// primitives that the impact calculations depend on.
//
// # Arrays
//
// [Array] is a rectangular, fixed-dtype, n-dimensional container of real
// numbers backed by a flat row-major float64 slice. [EnsureNumeric] is the
// single entry point that normalizes caller input (scalars, nested slices,
// existing arrays) into an Array, rejecting textual input outright. When the
// input is already an Array with an acceptable dtype it is returned without
// copying; hazard grids can be large and needless duplication is the main
// memory cost in the pipeline.
//
// # Tolerant comparison
//
// [AllClose] implements NaN-aware approximate equality with the formula
//
//	|x - y| <= atol + rtol*|y|
//
// over positions that are NaN in neither input. NaN is meaningful data here
// (nodata cells in hazard grids), so its presence must match positionally
// between the two inputs rather than poisoning the comparison.
//
// # Error function and CDFs
//
// [Erf] is the Chebyshev rational approximation from Numerical Recipes §6.2
// (fractional error below ~1.2e-7). The formula is preserved verbatim, nine
// coefficients in Horner form, because fragility model results must stay
// bit-for-bit comparable across reimplementations within that tolerance.
// [NormalCDF] and [LogNormalCDF] build on it; sigma is deliberately
// unguarded, so a non-positive sigma propagates NaN/Inf instead of erroring.
//
// All functions are pure and safe for concurrent use.
package numeric
