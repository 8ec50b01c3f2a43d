package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics instruments the observability endpoints themselves. It carries its
// own registry so several servers can coexist in one process, and merges any
// extra gatherers (solver metrics, for instance) into a single exposition.
type Metrics struct {
	registry *prometheus.Registry

	activeRequests prometheus.Gauge
	requestsTotal  prometheus.Counter

	handler http.Handler
}

// NewMetrics creates the endpoint metrics backed by a fresh registry. The
// registry includes the Go runtime collector, so the exposition always carries
// go_* metrics alongside the request counters. Extra gatherers are served from
// the same endpoint without being registered here.
func NewMetrics(extra ...prometheus.Gatherer) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tricalc_active_requests",
			Help: "HTTP requests currently in flight.",
		}),
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tricalc_requests_total",
			Help: "HTTP requests served since process start.",
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		m.activeRequests,
		m.requestsTotal,
	)

	gatherers := make(prometheus.Gatherers, 0, len(extra)+1)
	gatherers = append(gatherers, registry)
	gatherers = append(gatherers, extra...)
	m.handler = promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{})

	return m
}

// IncrementActiveRequests records the start of an HTTP request.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
	m.requestsTotal.Inc()
}

// DecrementActiveRequests records the end of an HTTP request.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// WritePrometheus serves the merged metric exposition in the Prometheus text
// format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
