// Command genlayers generates a synthetic layer-pair JSON fixture: a flood
// depth grid shaped like a drainage basin plus a scatter of buildings. It
// validates the fixture through the actual domain parsers so the output is
// guaranteed to be accepted by the pipeline.
//
// Usage:
//
//	go run ./cmd/genlayers -out data/mock/jakarta_layer_pair.json
//	go run ./cmd/genlayers -out pair.json -nx 40 -ny 30 -buildings 250 -seed 7
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/inundata/flood-impact-etl/internal/domain"
)

// Fixture coverage: a small WGS-84 window over the Ciliwung floodplain.
const (
	lonWest   = 106.75
	latSouth  = -6.30
	lonExtent = 0.25
	latExtent = 0.25
)

func main() {
	out := flag.String("out", "", "output path for the layer-pair JSON fixture")
	nx := flag.Int("nx", 30, "hazard grid columns")
	ny := flag.Int("ny", 20, "hazard grid rows")
	buildings := flag.Int("buildings", 150, "number of exposure buildings")
	seed := flag.Int64("seed", 1, "random seed for building placement")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		os.Exit(1)
	}
	if *nx < 2 || *ny < 2 || *buildings < 1 {
		log.Fatal("nx and ny must be at least 2, buildings at least 1")
	}

	if err := run(*out, *nx, *ny, *buildings, *seed); err != nil {
		log.Fatal(err)
	}
}

func run(out string, nx, ny, buildings int, seed int64) error {
	pair := domain.RawLayerPair{
		RequestID: fmt.Sprintf("genlayers-%d", seed),
		Hazard:    generateHazard(nx, ny),
		Exposure:  generateExposure(buildings, seed),
	}

	payload, err := json.MarshalIndent(pair, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}

	// Round-trip through the real parsers; a fixture the pipeline would
	// reject is worse than no fixture.
	if _, err := domain.ParseRawLayers(domain.RawEvent{Value: payload}); err != nil {
		return fmt.Errorf("generated fixture failed validation: %w", err)
	}

	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(out, payload, 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}

	fmt.Printf("wrote %s: %dx%d hazard grid, %d buildings\n", out, ny, nx, buildings)
	return nil
}

// generateHazard builds a bottom-up depth grid: a smooth basin deepest at
// the grid centre, dry at the rim, with a band of nodata cells along the
// eastern edge standing in for cells the collector failed to sample.
func generateHazard(nx, ny int) domain.RawHazardLayer {
	dx := lonExtent / float64(nx)
	dy := latExtent / float64(ny)

	values := make([]*float64, 0, nx*ny)
	for row := 0; row < ny; row++ {
		for col := 0; col < nx; col++ {
			if col >= nx-2 && row%3 == 0 {
				values = append(values, nil)
				continue
			}
			// Normalized distance from grid centre in [0, ~1.4].
			u := (float64(col)+0.5)/float64(nx)*2 - 1
			v := (float64(row)+0.5)/float64(ny)*2 - 1
			depth := 4.0 * math.Exp(-2.5*(u*u+v*v))
			if depth < 0.05 {
				depth = 0
			}
			d := math.Round(depth*1000) / 1000
			values = append(values, &d)
		}
	}

	return domain.RawHazardLayer{
		Name: "ciliwung-flood-depth",
		// GDAL convention: origin at the upper-left corner, negative row step.
		Geotransform: []float64{lonWest, dx, 0, latSouth + latExtent, 0, -dy},
		Nx:           nx,
		Ny:           ny,
		Values:       values,
	}
}

// generateExposure scatters buildings over a window slightly larger than the
// hazard grid so a few land outside it and exercise the nil-depth path.
func generateExposure(count int, seed int64) domain.RawExposureLayer {
	rng := rand.New(rand.NewSource(seed))

	margin := lonExtent * 0.1
	bs := make([]domain.RawBuilding, 0, count)
	for i := 0; i < count; i++ {
		bs = append(bs, domain.RawBuilding{
			ID:  fmt.Sprintf("bldg-%04d", i),
			Lon: lonWest - margin + rng.Float64()*(lonExtent+2*margin),
			Lat: latSouth - margin + rng.Float64()*(latExtent+2*margin),
		})
	}

	return domain.RawExposureLayer{
		Name:      "osm-buildings",
		Buildings: bs,
	}
}
