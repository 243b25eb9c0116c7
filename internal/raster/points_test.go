package raster_test

import (
	"math"
	"testing"

	"github.com/inundata/flood-impact-etl/internal/numeric"
	"github.com/inundata/flood-impact-etl/internal/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxesToPoints_Order(t *testing.T) {
	points, err := raster.AxesToPoints([]float64{1, 2, 3}, []float64{10, 20})
	require.NoError(t, err)

	// x varies fastest, matching row-major flattening.
	want := []raster.Point{
		{1, 10}, {2, 10}, {3, 10},
		{1, 20}, {2, 20}, {3, 20},
	}
	assert.Equal(t, want, points)
}

func TestAxesToPoints_IndexMapping(t *testing.T) {
	x := []float64{100.5, 101.5, 102.5, 103.5}
	y := []float64{-3.5, -2.5, -1.5}

	points, err := raster.AxesToPoints(x, y)
	require.NoError(t, err)
	require.Len(t, points, len(x)*len(y))

	// point i = (x[i%nx], y[i/nx])
	for i, p := range points {
		assert.Equal(t, x[i%len(x)], p.X, "point %d", i)
		assert.Equal(t, y[i/len(x)], p.Y, "point %d", i)
	}
}

func TestAxesToPoints_EmptyAxis(t *testing.T) {
	points, err := raster.AxesToPoints([]float64{1, 2}, nil)
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestGridToPoints(t *testing.T) {
	t.Run("pairs points with row-major values", func(t *testing.T) {
		grid, err := numeric.NewGrid([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
		require.NoError(t, err)

		points, values, err := raster.GridToPoints(grid, []float64{1, 2, 3}, []float64{10, 20})
		require.NoError(t, err)

		assert.Len(t, points, 6)
		assert.Len(t, values, 6)
		assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, values)
	})

	t.Run("decreasing longitudes rejected", func(t *testing.T) {
		grid, err := numeric.NewGrid(make([]float64, 6), 2, 3)
		require.NoError(t, err)

		_, _, err = raster.GridToPoints(grid, []float64{3, 2, 1}, []float64{10, 20})
		require.Error(t, err)
		assert.ErrorIs(t, err, raster.ErrInvalidGeometry)
		assert.Contains(t, err.Error(), "longitudes must be increasing")
	})

	t.Run("decreasing latitudes rejected", func(t *testing.T) {
		grid, err := numeric.NewGrid(make([]float64, 6), 2, 3)
		require.NoError(t, err)

		_, _, err = raster.GridToPoints(grid, []float64{1, 2, 3}, []float64{20, 10})
		require.Error(t, err)
		assert.ErrorIs(t, err, raster.ErrInvalidGeometry)
		assert.Contains(t, err.Error(), "latitudes must be increasing")
	})

	t.Run("shape mismatch rejected", func(t *testing.T) {
		grid, err := numeric.NewGrid(make([]float64, 6), 2, 3)
		require.NoError(t, err)

		_, _, err = raster.GridToPoints(grid, []float64{1, 2}, []float64{10, 20})
		require.Error(t, err)
		assert.ErrorIs(t, err, raster.ErrInvalidGeometry)
	})

	t.Run("non-2D grid rejected", func(t *testing.T) {
		_, _, err := raster.GridToPoints(numeric.NewVector([]float64{1, 2, 3}), []float64{1, 2, 3}, []float64{10})
		require.Error(t, err)
		assert.ErrorIs(t, err, raster.ErrInvalidGeometry)
	})

	t.Run("length invariant", func(t *testing.T) {
		// nx*ny points and values for every valid grid.
		for _, dims := range [][2]int{{1, 1}, {1, 5}, {4, 1}, {3, 7}} {
			ny, nx := dims[0], dims[1]
			grid, err := numeric.NewGrid(make([]float64, ny*nx), ny, nx)
			require.NoError(t, err)

			x := make([]float64, nx)
			for i := range x {
				x[i] = float64(i)
			}
			y := make([]float64, ny)
			for i := range y {
				y[i] = float64(i)
			}

			points, values, err := raster.GridToPoints(grid, x, y)
			require.NoError(t, err)
			assert.Len(t, points, nx*ny, "ny=%d nx=%d", ny, nx)
			assert.Len(t, values, nx*ny, "ny=%d nx=%d", ny, nx)
		}
	})
}

// TestGridToPoints_Orientation pins the bottom-up convention with an
// asymmetric grid: every cell has a distinct value and the expected pairing
// is written out by hand. Row 0 of the grid is the southernmost row and maps
// to the smallest latitude.
func TestGridToPoints_Orientation(t *testing.T) {
	// Depths increase northward and eastward, no two cells equal:
	//   row 0 (south, y=0): 1 2 3
	//   row 1 (north, y=1): 4 5 6
	grid, err := numeric.NewGrid([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	points, values, err := raster.GridToPoints(grid, []float64{100, 101, 102}, []float64{0, 1})
	require.NoError(t, err)

	type pv struct {
		p raster.Point
		v float64
	}
	want := []pv{
		{raster.Point{100, 0}, 1},
		{raster.Point{101, 0}, 2},
		{raster.Point{102, 0}, 3},
		{raster.Point{100, 1}, 4},
		{raster.Point{101, 1}, 5},
		{raster.Point{102, 1}, 6},
	}
	for i, w := range want {
		assert.Equal(t, w.p, points[i], "point %d", i)
		assert.Equal(t, w.v, values[i], "value %d", i)
	}
}

func TestGridToPoints_NaNValuesPassThrough(t *testing.T) {
	nan := math.NaN()
	grid, err := numeric.NewGrid([]float64{0.5, nan, nan, 2.0}, 2, 2)
	require.NoError(t, err)

	_, values, err := raster.GridToPoints(grid, []float64{0, 1}, []float64{0, 1})
	require.NoError(t, err)

	// NaN is nodata, not an error.
	assert.True(t, numeric.AllClose([]float64{0.5, nan, nan, 2.0}, values))
}
