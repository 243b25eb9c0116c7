package raster

import (
	"fmt"

	"github.com/inundata/flood-impact-etl/internal/numeric"
)

// Point is a 2D world coordinate: X is longitude, Y is latitude.
type Point struct {
	X float64
	Y float64
}

// AxesToPoints generates every combination of x and y axis values as grid
// point coordinates.
//
// The x coordinate varies fastest, matching row-major flattening of a
// same-shaped grid stored bottom-up (see the package doc for the orientation
// convention): point i = (x[i%nx], y[i/nx]). For example
//
//	x = [1, 2, 3]
//	y = [10, 20]
//
// yields (1,10) (2,10) (3,10) (1,20) (2,20) (3,20).
func AxesToPoints(x, y []float64) ([]Point, error) {
	nx, ny := len(x), len(y)

	// Repeat the x axis once per y value (fastest varying) and each y value
	// once per x value (slowest varying).
	xs := make([]float64, 0, nx*ny)
	ys := make([]float64, 0, nx*ny)
	for _, yv := range y {
		xs = append(xs, x...)
		for range x {
			ys = append(ys, yv)
		}
	}

	// The coordinate sequences must line up one-to-one. A mismatch is a
	// logic defect, not bad input.
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: coordinate sequence lengths differ (%d x, %d y)",
			ErrInvariant, len(xs), len(ys))
	}

	points := make([]Point, len(xs))
	for i := range xs {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}
	return points, nil
}

// GridToPoints converts grid data to point data.
//
// A is a 2D array of pixel values stored bottom-up; x holds the longitudes of
// A's columns (west to east) and y the latitudes of A's rows (south to
// north). The returned values share A's backing storage and must be treated
// as read-only.
//
// Both axes must be strictly increasing, checked via their first two
// elements; violations fail with ErrInvalidGeometry. The returned points and
// values have equal length nx*ny, with point i carrying the value of grid
// cell (i/nx, i%nx).
func GridToPoints(a *numeric.Array, x, y []float64) ([]Point, []float64, error) {
	if len(x) >= 2 && x[0] >= x[1] {
		return nil, nil, fmt.Errorf("%w: longitudes must be increasing (west to east), got %v",
			ErrInvalidGeometry, x)
	}
	if len(y) >= 2 && y[0] >= y[1] {
		return nil, nil, fmt.Errorf("%w: latitudes must be increasing (south to north), got %v",
			ErrInvalidGeometry, y)
	}

	shape := a.Shape()
	if len(shape) != 2 {
		return nil, nil, fmt.Errorf("%w: grid must be 2-dimensional, got shape %v",
			ErrInvalidGeometry, shape)
	}
	if shape[0] != len(y) || shape[1] != len(x) {
		return nil, nil, fmt.Errorf("%w: grid shape (%d, %d) does not match axes (ny=%d, nx=%d)",
			ErrInvalidGeometry, shape[0], shape[1], len(y), len(x))
	}

	points, err := AxesToPoints(x, y)
	if err != nil {
		return nil, nil, err
	}

	// Flat row-major view of A, aligned with the point order by the bottom-up
	// convention. No copy.
	values := a.Values()

	if len(points) != len(values) {
		return nil, nil, fmt.Errorf("%w: %d points for %d values",
			ErrInvariant, len(points), len(values))
	}
	return points, values, nil
}
