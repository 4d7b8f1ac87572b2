package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initChainMetrics() {
	r.ChainsBuilt = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "plantsight_consequence_chains_total",
			Help: "Consequence-chain builds, by outcome",
		},
		[]string{"status"},
	)

	r.ChainDepthReached = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "plantsight_chain_depth_reached",
			Help:    "Deepest hop reached per consequence chain",
			Buckets: []float64{1, 2, 3, 4, 5},
		},
	)

	r.ChainStepCount = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "plantsight_chain_steps",
			Help:    "Impact steps per consequence chain",
			Buckets: []float64{1, 5, 10, 25, 50, 100},
		},
	)
}
