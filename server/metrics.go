package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles Prometheus metrics for the simulate surface and provides
// a ready-to-serve /metrics handler.
type Collector struct {
	gatherer prometheus.Gatherer

	SimulateRequests *prometheus.CounterVec
	SimulateDuration *prometheus.HistogramVec
}

// NewCollector registers simulator Prometheus metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "disksim_simulate_requests_total",
		Help: "Total number of handled simulate calls, labeled by algorithm selector and outcome.",
	}, []string{"algorithm", "status"})
	requests, err := registerCounterVec(reg, requests, "disksim_simulate_requests_total")
	if err != nil {
		return nil, err
	}

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "disksim_simulate_duration_seconds",
		Help:    "Simulate call latency in seconds.",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"algorithm"})
	duration, err = registerHistogramVec(reg, duration, "disksim_simulate_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:         gatherer,
		SimulateRequests: requests,
		SimulateDuration: duration,
	}, nil
}

// ObserveSimulate records one simulate call. algorithm is the normalized
// selector (or "invalid" when validation never got that far); status is the
// outcome class used in dashboards ("ok", "rejected", "error").
func (c *Collector) ObserveSimulate(algorithm, status string, elapsed time.Duration) {
	if c == nil {
		return
	}
	if c.SimulateRequests != nil {
		c.SimulateRequests.WithLabelValues(algorithm, status).Inc()
	}
	if c.SimulateDuration != nil {
		c.SimulateDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
