package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initInferenceMetrics() {
	r.PassDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "plantsight_pass_duration_seconds",
			Help:    "Relationship inference pass duration",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0},
		},
		[]string{"pass"},
	)

	r.RelationshipsInferred = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "plantsight_relationships_inferred_total",
			Help: "Relationship edges emitted, by pass and relationship type",
		},
		[]string{"pass", "type"},
	)

	r.LoopsReconstructed = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "plantsight_loops_reconstructed",
			Help: "Control loops reconstructed from the current snapshot, by status",
		},
		[]string{"status"},
	)
}
