// SPDX-License-Identifier: MIT

package factorgraph

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "skillgraph"

// Metrics exposes schedule activity as Prometheus collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	updates     *prometheus.CounterVec
	deltas      prometheus.Histogram
	iterations  *prometheus.CounterVec
	unconverged *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg. On error
// nothing stays registered, so the call can be retried on the same registry.
//
// Errors:
//   - the registration error (e.g. prometheus.AlreadyRegisteredError) wrapped
//     with the collector name.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "schedule",
			Name:      "message_updates_total",
			Help:      "Factor message updates performed, by schedule step.",
		}, []string{"step"}),
		deltas: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "schedule",
			Name:      "update_delta",
			Help:      "Magnitude of marginal change reported by message updates.",
			Buckets:   prometheus.ExponentialBuckets(1e-8, 10, 10),
		}),
		iterations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "schedule",
			Name:      "loop_iterations_total",
			Help:      "Loop iterations executed, by loop.",
		}, []string{"loop"}),
		unconverged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "schedule",
			Name:      "loop_unconverged_total",
			Help:      "Loops that stopped at their iteration cap, by loop.",
		}, []string{"loop"}),
	}

	collectors := []struct {
		name string
		c    prometheus.Collector
	}{
		{"message_updates_total", m.updates},
		{"update_delta", m.deltas},
		{"loop_iterations_total", m.iterations},
		{"loop_unconverged_total", m.unconverged},
	}
	for i, col := range collectors {
		if err := reg.Register(col.c); err != nil {
			for _, done := range collectors[:i] {
				reg.Unregister(done.c)
			}
			return nil, fmt.Errorf("register %s: %w", col.name, err)
		}
	}

	return m, nil
}

func (m *Metrics) observeUpdate(step string, delta float64) {
	if m == nil {
		return
	}
	m.updates.WithLabelValues(step).Inc()
	m.deltas.Observe(delta)
}

func (m *Metrics) observeIteration(loop string) {
	if m == nil {
		return
	}
	m.iterations.WithLabelValues(loop).Inc()
}

func (m *Metrics) observeUnconverged(loop string) {
	if m == nil {
		return
	}
	m.unconverged.WithLabelValues(loop).Inc()
}
