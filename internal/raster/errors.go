package raster

import "errors"

var (
	// ErrInvalidGeometry is returned for non-increasing coordinate axes,
	// non-positive pixel resolutions, and grid/axis shape mismatches.
	// User-correctable: the supplied layer geometry is malformed.
	ErrInvalidGeometry = errors.New("raster: invalid geometry")

	// ErrInvariant is returned when an internally computed invariant fails,
	// e.g. mismatched coordinate sequence lengths. Never user-correctable;
	// indicates a logic defect and aborts the computation.
	ErrInvariant = errors.New("raster: internal invariant violation")
)
