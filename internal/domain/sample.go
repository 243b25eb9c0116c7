package domain

import "math"

// SampleDepth returns the flood depth of the hazard cell containing
// (lon, lat), or NaN when the point falls outside the grid. Assignment is
// nearest-cell: the point inherits the value of the pixel whose footprint
// covers it, with pixel centers given by the hazard axes.
func SampleDepth(h HazardRaster, lon, lat float64) float64 {
	dx := h.Transform[1]
	dy := -h.Transform[5]

	// Column from the west edge, bottom-up row from the south edge.
	lonWest := h.Transform[0]
	latSouth := h.Transform[3] - float64(h.Ny)*dy

	col := int(math.Floor((lon - lonWest) / dx))
	row := int(math.Floor((lat - latSouth) / dy))
	if col < 0 || col >= h.Nx || row < 0 || row >= h.Ny {
		return math.NaN()
	}
	return h.Grid.At(row, col)
}

// SampleDepths samples every building location against the hazard grid,
// returning depths positionally aligned with buildings.
func SampleDepths(h HazardRaster, buildings []Building) []float64 {
	depths := make([]float64, len(buildings))
	for i, b := range buildings {
		depths[i] = SampleDepth(h, b.Lon, b.Lat)
	}
	return depths
}
