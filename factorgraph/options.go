// SPDX-License-Identifier: MIT

// Package factorgraph: functional configuration for schedules.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics only on nonsensical values (programmer error).
//   - Nil logger/metrics mean "off", never a nil dereference.
package factorgraph

import (
	"math"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxDelta is the convergence threshold of a Loop: iteration stops
	// once the inner schedule reports a delta ≤ DefaultMaxDelta.
	DefaultMaxDelta = 1e-4

	// DefaultMaxIterations caps a Loop; reaching it returns ErrNotConverged.
	DefaultMaxIterations = 100
)

const (
	panicMaxDeltaInvalid      = "factorgraph: WithMaxDelta: delta must be finite, non-negative"
	panicMaxIterationsInvalid = "factorgraph: WithMaxIterations: iterations must be > 0"
)

// Option configures a schedule.
type Option func(*Options)

// Options is the resolved schedule configuration.
type Options struct {
	maxDelta      float64     // >= 0; DefaultMaxDelta
	maxIterations int         // > 0; DefaultMaxIterations
	logger        *zap.Logger // never nil after gatherOptions
	metrics       *Metrics    // nil disables metrics
}

// WithMaxDelta sets the Loop convergence threshold.
// Panics if delta is negative, NaN or infinite.
func WithMaxDelta(delta float64) Option {
	if delta < 0 || math.IsNaN(delta) || math.IsInf(delta, 0) {
		panic(panicMaxDeltaInvalid)
	}

	return func(o *Options) { o.maxDelta = delta }
}

// WithMaxIterations caps the number of Loop iterations.
// Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithLogger routes schedule diagnostics to logger. nil restores the no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		if logger == nil {
			logger = zap.NewNop()
		}
		o.logger = logger
	}
}

// WithMetrics records schedule activity into m. nil disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.metrics = m }
}

// gatherOptions applies opts left-to-right over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		maxDelta:      DefaultMaxDelta,
		maxIterations: DefaultMaxIterations,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
