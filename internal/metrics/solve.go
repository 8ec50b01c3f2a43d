package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "github.com/agbru/tricalc/internal/errors"
)

// Solve outcome labels.
const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusCanceled = "canceled"
)

// SolveMetrics instruments solver activity. Each instance carries its own
// registry, so embedding applications can run several instrumented solver
// pools without collector name collisions.
type SolveMetrics struct {
	registry *prometheus.Registry

	solvesTotal   *prometheus.CounterVec
	solveDuration *prometheus.HistogramVec
	activeSolves  prometheus.Gauge
	triangleRows  prometheus.Histogram
}

// NewSolveMetrics creates a metrics set backed by a fresh registry.
func NewSolveMetrics() *SolveMetrics {
	registry := prometheus.NewRegistry()

	m := &SolveMetrics{
		registry: registry,
		solvesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tricalc_solves_total",
			Help: "Completed solves by algorithm and outcome.",
		}, []string{"algorithm", "status"}),
		solveDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tricalc_solve_duration_seconds",
			Help:    "Wall clock duration of individual solves.",
			Buckets: prometheus.DefBuckets,
		}, []string{"algorithm"}),
		activeSolves: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tricalc_active_solves",
			Help: "Solves currently in flight.",
		}),
		triangleRows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tricalc_triangle_rows",
			Help:    "Height distribution of solved triangles.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}),
	}

	registry.MustRegister(m.solvesTotal, m.solveDuration, m.activeSolves, m.triangleRows)
	return m
}

// SolveStarted records the admission of a triangle into a solver.
func (m *SolveMetrics) SolveStarted(rows int) {
	m.activeSolves.Inc()
	m.triangleRows.Observe(float64(rows))
}

// SolveFinished records the completion of a solve. The outcome is derived
// from err: nil counts as ok, context errors as canceled, anything else as
// error.
func (m *SolveMetrics) SolveFinished(algorithm string, elapsed time.Duration, err error) {
	m.activeSolves.Dec()

	status := StatusOK
	switch {
	case err == nil:
	case apperrors.IsContextError(err):
		status = StatusCanceled
	default:
		status = StatusError
	}

	m.solvesTotal.WithLabelValues(algorithm, status).Inc()
	m.solveDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

// Registry exposes the backing registry for embedding into a shared
// gatherer.
func (m *SolveMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler serving this instance's metrics in the
// Prometheus text format.
func (m *SolveMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
