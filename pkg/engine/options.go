package engine

import (
	"github.com/plantsight/plantsight/pkg/config"
	"github.com/plantsight/plantsight/pkg/logging"
	"github.com/plantsight/plantsight/pkg/metrics"
)

// Option customizes engine construction.
type Option func(*Engine)

// WithConfig replaces the default configuration. The caller is
// responsible for validating it first (config.Load already does).
func WithConfig(cfg *config.Config) Option {
	return func(e *Engine) {
		if cfg != nil {
			e.cfg = cfg
		}
	}
}

// WithLogger wires a structured logger into the engine.
func WithLogger(log logging.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithMetrics wires a metrics registry into the engine.
func WithMetrics(reg *metrics.Registry) Option {
	return func(e *Engine) {
		e.metrics = reg
	}
}
