// SPDX-License-Identifier: MIT
package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trafficgraph/geometry"
	"github.com/katalvlaran/trafficgraph/internal/metrics"
	"github.com/katalvlaran/trafficgraph/result"
	"github.com/katalvlaran/trafficgraph/session"
)

func TestAlgorithmRun(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.AlgorithmRun(result.KindShortestPath, session.KindNone, 2*time.Millisecond)
	m.AlgorithmRun(result.KindShortestPath, session.KindNoPath, time.Millisecond)
	m.AlgorithmRun(result.KindShortestPath, session.KindNone, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AlgorithmRuns.WithLabelValues("shortest_path", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AlgorithmRuns.WithLabelValues("shortest_path", "NoPath")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.AlgorithmDuration))
}

func TestSessionsAndGeometry(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.SessionsChanged(3)
	m.SessionsChanged(2)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Sessions))

	m.GeometryLookup(geometry.OutcomeFallback)
	m.GeometryLookup(geometry.OutcomeCacheHit)
	m.GeometryLookup(geometry.OutcomeCacheHit)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.GeometryLookups.WithLabelValues("cache_hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GeometryLookups.WithLabelValues("fallback")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	m.ObserveHTTP(http.MethodGet, "/api/sessions/:sid/graph", http.StatusOK, 3*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/sessions/:sid/graph", "200")))

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `trafficgraph_http_requests_total{method="GET",route="/api/sessions/:sid/graph",status="200"} 1`)
	assert.Contains(t, string(body), "trafficgraph_http_request_duration_seconds_bucket")
}

func TestNew_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.New(prometheus.NewRegistry())
		metrics.New(prometheus.NewRegistry())
	})
}
