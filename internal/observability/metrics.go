package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// impact pipeline.
type Metrics struct {
	LayersConsumed  prometheus.Counter
	ImpactsProduced prometheus.Counter
	TransformErrors prometheus.Counter
	PipelineRunning prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Impact model metrics.
	BuildingsAssessed prometheus.Counter
	BuildingsAffected prometheus.Counter
	ImpactDuration    prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		LayersConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flood_impact",
			Name:      "layers_consumed_total",
			Help:      "Total layer-pair messages read from the source topic.",
		}),
		ImpactsProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flood_impact",
			Name:      "impacts_produced_total",
			Help:      "Total impact datasets written to the sink topic.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flood_impact",
			Name:      "transform_errors_total",
			Help:      "Total layer pairs rejected as malformed or geometrically invalid.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "flood_impact",
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "flood_impact",
			Name:      "batch_size",
			Help:      "Number of messages per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "flood_impact",
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-transform-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		BuildingsAssessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flood_impact",
			Name:      "buildings_assessed_total",
			Help:      "Total buildings that sampled a real flood depth.",
		}),
		BuildingsAffected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flood_impact",
			Name:      "buildings_affected_total",
			Help:      "Total buildings at or above the depth threshold.",
		}),
		ImpactDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "flood_impact",
			Name:      "impact_calc_duration_seconds",
			Help:      "Duration of a single hazard/exposure impact calculation.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
	}

	prometheus.MustRegister(
		m.LayersConsumed,
		m.ImpactsProduced,
		m.TransformErrors,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.BuildingsAssessed,
		m.BuildingsAffected,
		m.ImpactDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		LayersConsumed:          prometheus.NewCounter(prometheus.CounterOpts{Namespace: "flood_impact", Name: "layers_consumed_total"}),
		ImpactsProduced:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "flood_impact", Name: "impacts_produced_total"}),
		TransformErrors:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "flood_impact", Name: "transform_errors_total"}),
		PipelineRunning:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "flood_impact", Name: "pipeline_running"}),
		BatchSize:               prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "flood_impact", Name: "batch_size"}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "flood_impact", Name: "batch_processing_duration_seconds"}),
		BuildingsAssessed:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "flood_impact", Name: "buildings_assessed_total"}),
		BuildingsAffected:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "flood_impact", Name: "buildings_affected_total"}),
		ImpactDuration:          prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "flood_impact", Name: "impact_calc_duration_seconds"}),
	}
}
