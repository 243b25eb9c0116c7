package domain

import (
	"context"
	"time"

	"github.com/inundata/flood-impact-etl/internal/numeric"
	"github.com/inundata/flood-impact-etl/internal/raster"
)

// RawHazardLayer is the hazard grid as serialized by the collector.
// Values are row-major bottom-up flood depths in metres; null marks nodata.
type RawHazardLayer struct {
	Name         string     `json:"name"`
	Geotransform []float64  `json:"geotransform"`
	Nx           int        `json:"nx"`
	Ny           int        `json:"ny"`
	Values       []*float64 `json:"values"`
}

// RawBuilding is a single exposure feature: a building reduced to a
// representative WGS-84 point.
type RawBuilding struct {
	ID  string  `json:"id"`
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// RawExposureLayer is the building layer as serialized by the collector.
type RawExposureLayer struct {
	Name      string        `json:"name"`
	Buildings []RawBuilding `json:"buildings"`
}

// RawLayerPair is the layer-pair message published to the source topic.
type RawLayerPair struct {
	RequestID string           `json:"request_id"`
	Hazard    RawHazardLayer   `json:"hazard"`
	Exposure  RawExposureLayer `json:"exposure"`
}

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// HazardRaster is the validated in-memory hazard layer. Grid is 2D of shape
// (Ny, Nx), bottom-up; X and Y are the pixel-center axes, strictly
// increasing.
type HazardRaster struct {
	Name      string
	Transform raster.Geotransform
	Nx        int
	Ny        int
	Grid      *numeric.Array
	X         []float64
	Y         []float64
}

// Building is a validated exposure feature.
type Building struct {
	ID  string
	Lon float64
	Lat float64
}

// LayerPair is a validated hazard/exposure pair ready for impact
// calculation.
type LayerPair struct {
	RequestID    string
	Hazard       HazardRaster
	ExposureName string
	Buildings    []Building
}

// BuildingImpact is one building's assessment in the derived dataset.
// Depth is nil when the building lies outside the hazard grid or on a
// nodata cell.
type BuildingImpact struct {
	ID       string   `json:"id"`
	Lon      float64  `json:"lon"`
	Lat      float64  `json:"lat"`
	Depth    *float64 `json:"depth"`
	Affected bool     `json:"affected"`
	Damage   float64  `json:"damage"`
}

// ImpactSummary aggregates the dataset for listing/preview consumers.
type ImpactSummary struct {
	BuildingsTotal    int     `json:"buildings_total"`
	BuildingsAssessed int     `json:"buildings_assessed"` // sampled a real depth
	BuildingsAffected int     `json:"buildings_affected"`
	MeanDepth         float64 `json:"mean_depth"` // over assessed buildings; 0 when none
	MaxDepth          float64 `json:"max_depth"`
	HazardCells       int     `json:"hazard_cells"`
	DepthThreshold    float64 `json:"depth_threshold"`
}

// ImpactDataset is the derived point dataset plus metadata published to the
// sink topic.
type ImpactDataset struct {
	ID           string           `json:"id"`
	RequestID    string           `json:"request_id,omitempty"`
	HazardName   string           `json:"hazard_name"`
	ExposureName string           `json:"exposure_name"`
	Buildings    []BuildingImpact `json:"buildings"`
	Summary      ImpactSummary    `json:"summary"`
	ProcessedAt  time.Time        `json:"processed_at"`
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
