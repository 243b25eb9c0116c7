// Package raster converts between regular-grid representations of hazard
// data and the flattened point representation the impact engine consumes.
//
// # Orientation convention
//
// All grids in this package are stored bottom-up: row 0 is the southernmost
// row and corresponds to y[0], the smallest latitude. Coordinate axes are
// always strictly increasing (longitudes west to east, latitudes south to
// north). Point order produced by [AxesToPoints] is the row-major flattening
// of such a grid with x varying fastest, so point i corresponds exactly to
// grid cell (i/nx, i%nx).
//
// Readers of north-up raster formats (where row 0 is northernmost) must flip
// rows before handing grids to this package. Earlier revisions flipped the
// y axis inside the point generator while flattening grid values unflipped,
// which silently paired northern coordinates with southern cell values; the
// single bottom-up convention here removes that asymmetry.
package raster
