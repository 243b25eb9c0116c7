package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/inundata/flood-impact-etl/internal/domain"
	"github.com/inundata/flood-impact-etl/internal/observability"
)

// ImpactTransformer implements Transformer by parsing a raw layer pair,
// running the flood building impact model, and serializing the resulting
// dataset.
type ImpactTransformer struct {
	cfg     domain.ImpactConfig
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewTransformer creates an ImpactTransformer with the given model
// parameters.
func NewTransformer(cfg domain.ImpactConfig, logger *slog.Logger, metrics *observability.Metrics) *ImpactTransformer {
	return &ImpactTransformer{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
	}
}

func (t *ImpactTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	pair, err := domain.ParseRawLayers(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	start := time.Now()
	dataset := domain.ComputeImpact(pair, t.cfg)
	t.metrics.ImpactDuration.Observe(time.Since(start).Seconds())
	t.metrics.BuildingsAssessed.Add(float64(dataset.Summary.BuildingsAssessed))
	t.metrics.BuildingsAffected.Add(float64(dataset.Summary.BuildingsAffected))

	t.logger.Debug("impact computed",
		"dataset_id", dataset.ID,
		"hazard", dataset.HazardName,
		"exposure", dataset.ExposureName,
		"buildings_total", dataset.Summary.BuildingsTotal,
		"buildings_affected", dataset.Summary.BuildingsAffected,
	)

	return serializeDataset(dataset)
}

// serializeDataset marshals an ImpactDataset into an output event keyed by
// the deterministic dataset ID.
func serializeDataset(dataset domain.ImpactDataset) (domain.OutputEvent, error) {
	data, err := json.Marshal(dataset)
	if err != nil {
		return domain.OutputEvent{}, fmt.Errorf("serialize impact dataset: %w", err)
	}
	return domain.OutputEvent{
		Key:   []byte(dataset.ID),
		Value: data,
		Headers: map[string]string{
			"hazard_name":   dataset.HazardName,
			"exposure_name": dataset.ExposureName,
			"processed_at":  dataset.ProcessedAt.Format(time.RFC3339),
		},
	}, nil
}
