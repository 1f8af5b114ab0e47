package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/disk-sim/disk-sim/sim"
)

// Server exposes the scheduling engine over HTTP: POST /simulate runs one or
// all algorithms, GET / serves the interactive page, GET /healthz reports
// liveness. Prometheus metrics are served by a separate listener so the API
// surface stays scrape-free.
type Server struct {
	cfg       Config
	collector *Collector
	mux       *http.ServeMux
}

// New builds a Server. collector may be nil to disable metrics.
func New(cfg Config, collector *Collector) *Server {
	s := &Server{cfg: cfg, collector: collector, mux: http.NewServeMux()}
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/simulate", s.handleSimulate)
	s.mux.HandleFunc("/healthz", s.handleHealthz)
	return s
}

// Handler returns the API handler, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run serves the API on cfg.ListenAddr and Prometheus metrics on
// cfg.MetricsAddr until ctx is cancelled, then drains both listeners.
func (s *Server) Run(ctx context.Context) error {
	api := &http.Server{Addr: s.cfg.ListenAddr, Handler: s.mux}

	var metrics *http.Server
	if s.collector != nil && s.cfg.MetricsAddr != "" {
		mmux := http.NewServeMux()
		mmux.Handle("/metrics", s.collector.Handler())
		metrics = &http.Server{Addr: s.cfg.MetricsAddr, Handler: mmux}
		go func() {
			if err := metrics.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logrus.Warnf("metrics server exited: %v", err)
			}
		}()
		logrus.Infof("serving Prometheus metrics on %s", s.cfg.MetricsAddr)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := api.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	logrus.Infof("serving simulate API on %s", s.cfg.ListenAddr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logrus.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if metrics != nil {
		_ = metrics.Shutdown(shutdownCtx)
	}
	return api.Shutdown(shutdownCtx)
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed, use POST"})
		return
	}

	start := time.Now()
	var req sim.SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.observe("invalid", "rejected", start)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "request body must be valid JSON"})
		return
	}

	input, err := req.Validate()
	if err != nil {
		s.observe("invalid", "rejected", start)
		s.writeError(w, err)
		return
	}

	if s.cfg.MaxRequests > 0 && len(input.Requests) > s.cfg.MaxRequests {
		s.observe(input.Algorithm, "rejected", start)
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "requests list exceeds the configured maximum length",
		})
		return
	}

	payload, err := sim.Run(input)
	if err != nil {
		s.observe(input.Algorithm, "error", start)
		s.writeError(w, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"algorithm": input.Algorithm,
		"requests":  len(input.Requests),
		"disk_size": input.DiskSize,
	}).Debug("simulate call served")

	s.observe(input.Algorithm, "ok", start)
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexPage))
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) observe(algorithm, status string, start time.Time) {
	s.collector.ObserveSimulate(algorithm, status, time.Since(start))
}

// writeError maps the core error taxonomy onto HTTP statuses: every
// validation class is the caller's fault (400), anything else is ours (500).
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, sim.ErrMissingField),
		errors.Is(err, sim.ErrMalformedInput),
		errors.Is(err, sim.ErrOutOfRange),
		errors.Is(err, sim.ErrUnknownAlgorithm):
		status = http.StatusBadRequest
	default:
		logrus.Errorf("simulate failed unexpectedly: %v", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Warnf("failed to encode response: %v", err)
	}
}
