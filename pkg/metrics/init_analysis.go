package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.AnalysesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "plantsight_analyses_total",
			Help: "Total number of engine constructions",
		},
		[]string{"status"},
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "plantsight_analysis_duration_seconds",
			Help:    "Engine construction duration (indexing, loops, all passes)",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
	)

	r.AssetsIndexed = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "plantsight_assets_indexed",
			Help: "Assets in the current snapshot that carry an identifier",
		},
	)

	r.AssetsSkipped = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "plantsight_assets_skipped",
			Help: "Assets skipped at indexing time for lacking an identifier",
		},
	)
}
