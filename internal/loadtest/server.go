package loadtest

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes /health and /metrics while a load test runs, so Prometheus
// can scrape limiter wait and retry metrics during the run.
type Server struct {
	server  *http.Server
	started time.Time
	healthy atomic.Bool
}

// NewServer creates a server listening on addr (e.g. ":9090").
func NewServer(addr string) *Server {
	mux := http.NewServeMux()
	s := &Server{
		server: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
		started: time.Now(),
	}
	s.healthy.Store(true)

	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())

	return s
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Stop stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	s.healthy.Store(false)
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	status := "ok"
	code := http.StatusOK
	if !s.healthy.Load() {
		status = "stopping"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": status,
		"uptime": time.Since(s.started).String(),
	})
}
