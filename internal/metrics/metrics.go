// Package metrics exposes Prometheus instrumentation for the selection
// core's outer layers, in the style of
// dmzoneill-ollama-proxy/pkg/metrics/metrics.go: package-level
// promauto-registered vectors plus thin Record*/Set* wrapper functions. The
// core package (internal/router) never imports this package directly —
// spec.md 1 explicitly places metrics export outside the core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SelectionsTotal counts backend selections by policy, backend, and
	// outcome ("connected", "skipped", "failed").
	SelectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dbrouter_selections_total",
			Help: "Total backend selection decisions by policy, backend, and outcome",
		},
		[]string{"policy", "backend_id", "outcome"},
	)

	// SlavesConnected reports the current number of in_use slave
	// connections per session-bringup call.
	SlavesConnected = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dbrouter_slaves_connected",
			Help:    "Slaves connected per session bring-up call",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 8, 16},
		},
		[]string{"policy"},
	)

	// AdaptiveDrawProbability records the probability mass assigned to the
	// winning candidate of an adaptive-routing draw, for observability into
	// how concentrated the roulette distribution is.
	AdaptiveDrawProbability = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dbrouter_adaptive_draw_probability",
			Help:    "Probability mass of the winning candidate in an adaptive roulette draw",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)

	// MasterGateFailuresTotal counts FAIL_INSTANTLY aborts by reason.
	MasterGateFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dbrouter_master_gate_failures_total",
			Help: "Total bring-up aborts at the master-failure gate, by reason",
		},
		[]string{"reason"},
	)

	// BackendInUse reports whether a backend is currently in_use (1) or
	// idle (0).
	BackendInUse = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dbrouter_backend_in_use",
			Help: "Whether a backend currently has an open session connection",
		},
		[]string{"backend_id"},
	)
)

// RecordSelection records one selection outcome.
func RecordSelection(policy, backendID, outcome string) {
	SelectionsTotal.WithLabelValues(policy, backendID, outcome).Inc()
}

// RecordSlavesConnected records the slave count reached by a bring-up call.
func RecordSlavesConnected(policy string, n int) {
	SlavesConnected.WithLabelValues(policy).Observe(float64(n))
}

// RecordAdaptiveDraw records the winning candidate's probability mass.
func RecordAdaptiveDraw(p float64) {
	AdaptiveDrawProbability.Observe(p)
}

// RecordMasterGateFailure records a FAIL_INSTANTLY abort.
func RecordMasterGateFailure(reason string) {
	MasterGateFailuresTotal.WithLabelValues(reason).Inc()
}

// SetBackendInUse sets the in_use gauge for a backend.
func SetBackendInUse(backendID string, inUse bool) {
	v := 0.0
	if inUse {
		v = 1.0
	}
	BackendInUse.WithLabelValues(backendID).Set(v)
}
