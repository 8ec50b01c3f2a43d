// Package server exposes the observability surface of a solver host: the
// Prometheus metric exposition and a liveness probe, behind request tracking
// and hardening middleware. It performs no computation itself.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/tricalc/internal/logging"
)

// readHeaderTimeout bounds how long a client may take to send request
// headers. The endpoints serve small responses to scrapers, so slow clients
// are cut off early.
const readHeaderTimeout = 5 * time.Second

// Server hosts the observability endpoints on a dedicated listener.
type Server struct {
	security SecurityConfig
	metrics  *Metrics
	logger   logging.Logger

	httpServer *http.Server
}

// NewServer creates a server listening on addr once started. Extra gatherers
// are merged into the /metrics exposition, which lets the embedding
// application surface solver metrics through the same endpoint.
//
// Parameters:
//   - addr: Listen address in host:port form.
//   - logger: Destination for request and lifecycle logging. A nil logger is
//     replaced with the process default.
//   - extra: Additional metric sources served from /metrics.
//
// Returns:
//   - *Server: The configured, not yet started server.
func NewServer(addr string, logger logging.Logger, extra ...prometheus.Gatherer) *Server {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	s := &Server{
		security: DefaultSecurityConfig(),
		metrics:  NewMetrics(extra...),
		logger:   logger,
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

// Handler returns the composed endpoint handler. It allows embedding the
// endpoints into an existing mux instead of running a dedicated listener.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the listener until Shutdown is called or the listener fails.
// A clean shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("observability server listening", logging.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the listener, waiting for in-flight requests up to the
// context deadline. Calling Shutdown on a never started server is a no-op.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.logger.Info("observability server shutting down")
	return s.httpServer.Shutdown(ctx)
}

// routes wires every endpoint through the shared middleware chain.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", s.withMiddleware(s.handleMetrics))
	mux.HandleFunc("/healthz", s.withMiddleware(s.handleHealth))
	return mux
}

// withMiddleware applies hardening first, then request tracking, so rejected
// preflight requests never touch the gauges.
func (s *Server) withMiddleware(h http.HandlerFunc) http.HandlerFunc {
	return SecurityMiddleware(s.security, s.metricsMiddleware(h))
}

// metricsMiddleware tracks request counts around next.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		next(w, r)
	}
}

// handleMetrics serves the Prometheus exposition. Only GET is accepted.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Debug("rejected metrics request", logging.String("method", r.Method))
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// handleHealth answers liveness probes. The server carries no state beyond
// its listener, so reachability is the whole check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Debug("rejected health request", logging.String("method", r.Method))
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
