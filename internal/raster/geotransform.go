package raster

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Geotransform is the GDAL-style affine map from pixel indices to world
// coordinates:
//
//	[0] longitude of the upper-left pixel corner
//	[1] west-east pixel resolution
//	[2] row rotation (unsupported, assumed zero)
//	[3] latitude of the upper-left pixel corner
//	[4] column rotation (unsupported, assumed zero)
//	[5] north-south pixel resolution, negative for north-up rasters
//
// The origin is the corner of the upper-left pixel, not its center.
type Geotransform [6]float64

// Axes derives pixel-center coordinate axes for an nx-by-ny grid.
//
// The returned longitudes and latitudes are offset half a pixel inward from
// the grid corners (pixel registration rather than gridline registration)
// and are strictly increasing. For an origin of (100, 10) with 1-degree
// resolution and nx = ny = 9:
//
//	x = [100.5, 101.5, ..., 108.5]
//	y = [1.5, 2.5, ..., 9.5]
//
// Fails with ErrInvalidGeometry when either derived resolution is
// non-positive, which also guards against rotated transforms.
func (g Geotransform) Axes(nx, ny int) (x, y []float64, err error) {
	if nx < 1 || ny < 1 {
		return nil, nil, fmt.Errorf("%w: grid dimensions must be positive, got nx=%d ny=%d",
			ErrInvalidGeometry, nx, ny)
	}

	lonUL := g[0]
	latUL := g[3]
	dx := g[1]
	dy := -g[5] // stored negative in the north-up convention

	if dx <= 0 {
		return nil, nil, fmt.Errorf("%w: west-east resolution must be positive, got %v",
			ErrInvalidGeometry, dx)
	}
	if dy <= 0 {
		return nil, nil, fmt.Errorf("%w: north-south resolution must be positive, got %v",
			ErrInvalidGeometry, -dy)
	}

	// Lower-left and upper-right corners of the grid.
	lonLL := lonUL
	latLL := latUL - float64(ny)*dy
	lonUR := lonUL + float64(nx)*dx

	x = spanAxis(lonLL+dx/2, lonUR-dx/2, nx)
	y = spanAxis(latLL+dy/2, latUL-dy/2, ny)
	return x, y, nil
}

// spanAxis fills n evenly spaced values from lo to hi inclusive.
func spanAxis(lo, hi float64, n int) []float64 {
	if n == 1 {
		// A single pixel center; lo and hi coincide. floats.Span requires
		// at least two elements.
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}
