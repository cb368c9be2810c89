// Package metrics provides Prometheus counters describing how a test suite
// uses the mock library.
package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetrics implements the Metrics interface using Prometheus client library.
// Metric names take the form {namespace}_{component}_{name}.
type PrometheusMetrics struct {
	component string

	// mocksCreated counts constructed mocks by trigger kind
	mocksCreated *prometheus.CounterVec
	// outputsWritten counts output binding writes by binding name
	outputsWritten *prometheus.CounterVec
	// decodeErrors counts failed JSON accessor calls by trigger and reason
	decodeErrors *prometheus.CounterVec
}

// New creates the collectors for component and registers them on reg.
//
// Pre-configured metrics:
//   - {namespace}_{component}_mocks_created_total: labels [trigger]
//   - {namespace}_{component}_outputs_written_total: labels [binding]
//   - {namespace}_{component}_decode_errors_total: labels [trigger, reason]
//
// Panics:
//   - If metrics registration fails (e.g., duplicate metric names)
func New(namespace, component string, reg prometheus.Registerer) *PrometheusMetrics {
	ns := sanitize(namespace)
	sub := sanitize(component)

	m := &PrometheusMetrics{
		component: component,
		mocksCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Subsystem: sub,
				Name:      "mocks_created_total",
				Help:      "Trigger mocks constructed, by trigger kind.",
			},
			[]string{"trigger"},
		),
		outputsWritten: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Subsystem: sub,
				Name:      "outputs_written_total",
				Help:      "Writes to captured output bindings, by binding name.",
			},
			[]string{"binding"},
		),
		decodeErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Subsystem: sub,
				Name:      "decode_errors_total",
				Help:      "JSON accessor failures, by trigger kind and reason.",
			},
			[]string{"trigger", "reason"},
		),
	}

	reg.MustRegister(m.mocksCreated, m.outputsWritten, m.decodeErrors)
	return m
}

// RecordMockCreated increments mocks_created_total for trigger.
func (m *PrometheusMetrics) RecordMockCreated(trigger string) {
	m.mocksCreated.WithLabelValues(trigger).Inc()
}

// RecordOutputWritten increments outputs_written_total for binding.
func (m *PrometheusMetrics) RecordOutputWritten(binding string) {
	m.outputsWritten.WithLabelValues(binding).Inc()
}

// RecordDecodeError increments decode_errors_total.
func (m *PrometheusMetrics) RecordDecodeError(trigger string, reason string) {
	m.decodeErrors.WithLabelValues(trigger, reason).Inc()
}

// sanitize turns a dotted or hyphenated name into a valid metric name part.
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
