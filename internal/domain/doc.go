// Package domain models flood hazard and building exposure layers and the
// impact calculation that combines them.
//
// # Data Source
//
// Layer pairs arrive as JSON messages on the Kafka source topic, published by
// the upstream collector service. The collector owns all GIS decoding
// (GeoTIFF, shapefile); by the time a message reaches this service the hazard
// layer is a plain cell-value grid with a geotransform and the exposure layer
// is a list of building points. This service never touches GIS file formats.
//
// # Layer Conventions
//
// Hazard grid:
//
//	Flood depth in metres per cell, row-major, stored bottom-up: row 0 is the
//	southernmost row. Collectors reading north-up rasters flip rows before
//	publishing. JSON null marks nodata and becomes NaN internally; NaN depths
//	are data, not errors, and propagate through the calculation.
//
// Geotransform:
//
//	GDAL 6-tuple convention. The origin is the upper-left pixel corner and
//	the north-south resolution is negative. Cell coordinates use pixel-center
//	registration, derived by [raster.Geotransform.Axes]. Rotated transforms
//	are unsupported and rejected.
//
// Buildings:
//
//	One WGS-84 point per structure with a collector-assigned ID. Building
//	footprint polygons are reduced to representative points upstream.
//
// # Impact Model
//
// Each building samples the flood depth of the grid cell containing it
// (nearest-cell assignment; buildings outside the grid sample NaN). A
// building is affected when its sampled depth reaches the configured
// threshold, 1 metre by default. The damage fraction comes from a log-normal
// fragility curve over depth, LogNormalCDF(depth, median, sigma); dry and
// nodata buildings take damage 0.
//
// # ID Generation
//
// Dataset IDs are deterministic SHA-256 hashes of the layer names, grid shape
// and model parameters, so replaying the same layer pair produces the same ID
// and downstream consumers can deduplicate. See [generateDatasetID].
package domain
