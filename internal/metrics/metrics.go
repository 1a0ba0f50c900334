// SPDX-License-Identifier: MIT
// Package metrics defines the Prometheus collectors of the service and
// adapts them to the observer hooks of session and geometry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/trafficgraph/geometry"
	"github.com/katalvlaran/trafficgraph/result"
	"github.com/katalvlaran/trafficgraph/session"
)

const namespace = "trafficgraph"

// Metrics holds every collector. It satisfies session.Observer and
// geometry.Observer.
type Metrics struct {
	gatherer prometheus.Gatherer

	// algorithm runs by kind and outcome (error kind, "ok" on success)
	AlgorithmRuns     *prometheus.CounterVec
	AlgorithmDuration *prometheus.HistogramVec
	Sessions          prometheus.Gauge
	GeometryLookups   *prometheus.CounterVec
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
}

var (
	_ session.Observer  = (*Metrics)(nil)
	_ geometry.Observer = (*Metrics)(nil)
)

// New registers the collectors on reg and serves reg from Handler.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		gatherer: reg,
		AlgorithmRuns: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "algorithm_runs_total",
				Help:      "Algorithm runs by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		AlgorithmDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "algorithm_duration_seconds",
				Help:      "Algorithm run duration in seconds",
				// microseconds for Dijkstra up to seconds for Hamiltonian search
				Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5},
			},
			[]string{"kind"},
		),
		Sessions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions",
			Help:      "Live sessions",
		}),
		GeometryLookups: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "geometry_lookups_total",
				Help:      "Road geometry lookups by outcome",
			},
			[]string{"outcome"},
		),
		HTTPRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// AlgorithmRun implements session.Observer.
func (m *Metrics) AlgorithmRun(kind result.Kind, outcome session.ErrorKind, elapsed time.Duration) {
	label := string(outcome)
	if outcome == session.KindNone {
		label = "ok"
	}
	m.AlgorithmRuns.WithLabelValues(string(kind), label).Inc()
	m.AlgorithmDuration.WithLabelValues(string(kind)).Observe(elapsed.Seconds())
}

// SessionsChanged implements session.Observer.
func (m *Metrics) SessionsChanged(n int) { m.Sessions.Set(float64(n)) }

// GeometryLookup implements geometry.Observer.
func (m *Metrics) GeometryLookup(outcome geometry.Outcome) {
	m.GeometryLookups.WithLabelValues(string(outcome)).Inc()
}

// ObserveHTTP records one served request. route is the matched pattern,
// not the raw path.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
