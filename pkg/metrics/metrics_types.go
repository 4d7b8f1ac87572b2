package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics the engine emits.
type Registry struct {
	// Analysis metrics
	AnalysesTotal    *prometheus.CounterVec // engine builds, by outcome
	AnalysisDuration prometheus.Histogram
	AssetsIndexed    prometheus.Gauge
	AssetsSkipped    prometheus.Gauge // records without an identifier

	// Inference pass metrics
	PassDuration          *prometheus.HistogramVec
	RelationshipsInferred *prometheus.CounterVec // by pass and relationship type

	// Loop metrics
	LoopsReconstructed *prometheus.GaugeVec // by status

	// Consequence chain metrics
	ChainsBuilt       *prometheus.CounterVec // by outcome
	ChainDepthReached prometheus.Histogram
	ChainStepCount    prometheus.Histogram

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initAnalysisMetrics()
	r.initInferenceMetrics()
	r.initChainMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry so a
// host service can expose it.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
