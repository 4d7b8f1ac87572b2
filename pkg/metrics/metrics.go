// Package metrics exposes prometheus instrumentation for the inference
// engine. Construction and every analysis query record into a Registry;
// a host service decides whether and where to expose it.
package metrics

import (
	"time"
)

// RecordAnalysis records one engine construction.
func (r *Registry) RecordAnalysis(status string, duration time.Duration, indexed, skipped int) {
	r.AnalysesTotal.WithLabelValues(status).Inc()
	r.AnalysisDuration.Observe(duration.Seconds())
	r.AssetsIndexed.Set(float64(indexed))
	r.AssetsSkipped.Set(float64(skipped))
}

// RecordPass records one inference pass execution.
func (r *Registry) RecordPass(pass string, duration time.Duration, byType map[string]int) {
	r.PassDuration.WithLabelValues(pass).Observe(duration.Seconds())
	for typ, n := range byType {
		r.RelationshipsInferred.WithLabelValues(pass, typ).Add(float64(n))
	}
}

// RecordLoops records the reconstructed loop counts by status.
func (r *Registry) RecordLoops(byStatus map[string]int) {
	for status, n := range byStatus {
		r.LoopsReconstructed.WithLabelValues(status).Set(float64(n))
	}
}

// RecordChain records one consequence-chain build.
func (r *Registry) RecordChain(status string, depthReached, steps int) {
	r.ChainsBuilt.WithLabelValues(status).Inc()
	if status == "ok" {
		r.ChainDepthReached.Observe(float64(depthReached))
		r.ChainStepCount.Observe(float64(steps))
	}
}
