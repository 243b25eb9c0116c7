package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/inundata/flood-impact-etl/internal/numeric"
	"github.com/inundata/flood-impact-etl/internal/raster"
)

// ErrMalformedLayers is returned when a layer-pair message is structurally
// invalid (bad JSON, missing layers, cell counts that disagree with the
// declared shape). Geometry violations surface as raster.ErrInvalidGeometry
// instead.
var ErrMalformedLayers = errors.New("domain: malformed layer pair")

// ParseRawLayers deserializes a RawEvent's value into a validated LayerPair.
// It expects the layer-pair JSON produced by the collector service.
func ParseRawLayers(raw RawEvent) (LayerPair, error) {
	var msg RawLayerPair
	if err := json.Unmarshal(raw.Value, &msg); err != nil {
		return LayerPair{}, fmt.Errorf("%w: %v", ErrMalformedLayers, err)
	}

	hazard, err := buildHazardRaster(msg.Hazard)
	if err != nil {
		return LayerPair{}, err
	}

	if len(msg.Exposure.Buildings) == 0 {
		return LayerPair{}, fmt.Errorf("%w: exposure layer %q has no buildings",
			ErrMalformedLayers, msg.Exposure.Name)
	}
	buildings := make([]Building, len(msg.Exposure.Buildings))
	for i, b := range msg.Exposure.Buildings {
		buildings[i] = Building{ID: b.ID, Lon: b.Lon, Lat: b.Lat}
	}

	return LayerPair{
		RequestID:    msg.RequestID,
		Hazard:       hazard,
		ExposureName: msg.Exposure.Name,
		Buildings:    buildings,
	}, nil
}

// buildHazardRaster validates the raw hazard layer and derives its
// pixel-center axes.
func buildHazardRaster(h RawHazardLayer) (HazardRaster, error) {
	if len(h.Geotransform) != 6 {
		return HazardRaster{}, fmt.Errorf("%w: hazard layer %q geotransform has %d elements, want 6",
			ErrMalformedLayers, h.Name, len(h.Geotransform))
	}
	if len(h.Values) != h.Nx*h.Ny {
		return HazardRaster{}, fmt.Errorf("%w: hazard layer %q declares %dx%d cells but carries %d values",
			ErrMalformedLayers, h.Name, h.Ny, h.Nx, len(h.Values))
	}

	var g raster.Geotransform
	copy(g[:], h.Geotransform)

	x, y, err := g.Axes(h.Nx, h.Ny)
	if err != nil {
		return HazardRaster{}, err
	}

	// null (nodata) becomes NaN; NaN is data from here on.
	cells := make([]float64, len(h.Values))
	for i, v := range h.Values {
		if v == nil {
			cells[i] = math.NaN()
		} else {
			cells[i] = *v
		}
	}
	grid, err := numeric.NewGrid(cells, h.Ny, h.Nx)
	if err != nil {
		return HazardRaster{}, fmt.Errorf("%w: %v", ErrMalformedLayers, err)
	}

	return HazardRaster{
		Name:      h.Name,
		Transform: g,
		Nx:        h.Nx,
		Ny:        h.Ny,
		Grid:      grid,
		X:         x,
		Y:         y,
	}, nil
}

// HazardPoints converts the hazard grid to its point representation: one
// (lon, lat) sample per cell paired with the cell's depth, in row-major
// bottom-up order.
func HazardPoints(h HazardRaster) ([]raster.Point, []float64, error) {
	return raster.GridToPoints(h.Grid, h.X, h.Y)
}
