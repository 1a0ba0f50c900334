// SPDX-License-Identifier: MIT
package geometry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/twpayne/go-polyline"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/trafficgraph/geo"
)

// Defaults for the public OSRM demo server.
const (
	DefaultBaseURL   = "http://router.project-osrm.org"
	DefaultTimeout   = 5 * time.Second
	DefaultRate      = 1.0
	DefaultBurst     = 1
	DefaultUserAgent = "trafficgraph/1.0"
)

var (
	errStatus   = errors.New("geometry: unexpected status")
	errNoRoute  = errors.New("geometry: no route")
	errGeometry = errors.New("geometry: malformed polyline")
)

// OSRM resolves road paths with the OSRM route service and caches
// successful lookups in memory. Failed lookups are not cached.
type OSRM struct {
	baseURL   string
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
	logger    *slog.Logger
	observer  Observer

	mu    sync.RWMutex
	cache map[string][]geo.Point
}

// Option configures an OSRM resolver.
type Option func(*OSRM)

// WithHTTPClient replaces the HTTP client. Panics on nil.
func WithHTTPClient(c *http.Client) Option {
	if c == nil {
		panic("geometry: WithHTTPClient(nil)")
	}

	return func(o *OSRM) { o.client = c }
}

// WithTimeout sets the per-request timeout. Panics if d <= 0.
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic(fmt.Sprintf("geometry: WithTimeout(%v): must be > 0", d))
	}

	return func(o *OSRM) { o.client = &http.Client{Timeout: d, Transport: o.client.Transport} }
}

// WithRateLimit caps requests per second with the given burst.
// Panics if perSec <= 0 or burst < 1.
func WithRateLimit(perSec float64, burst int) Option {
	if perSec <= 0 || burst < 1 {
		panic(fmt.Sprintf("geometry: WithRateLimit(%v, %d): invalid", perSec, burst))
	}

	return func(o *OSRM) { o.limiter = rate.NewLimiter(rate.Limit(perSec), burst) }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *OSRM) { o.userAgent = ua }
}

// WithLogger sets the logger for degraded lookups. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("geometry: WithLogger(nil)")
	}

	return func(o *OSRM) { o.logger = l }
}

// WithObserver installs a lookup observer. Panics on nil.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic("geometry: WithObserver(nil)")
	}

	return func(o *OSRM) { o.observer = obs }
}

// NewOSRM returns a resolver for the server at baseURL (DefaultBaseURL when
// empty).
func NewOSRM(baseURL string, opts ...Option) *OSRM {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	o := &OSRM{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    &http.Client{Timeout: DefaultTimeout},
		limiter:   rate.NewLimiter(rate.Limit(DefaultRate), DefaultBurst),
		userAgent: DefaultUserAgent,
		logger:    slog.Default(),
		observer:  nopObserver{},
		cache:     make(map[string][]geo.Point),
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// ResolvePath returns the road path from a to b, or [a, b] when OSRM cannot
// provide one.
//
// Steps:
//  1. Serve from the cache when both endpoints match to four decimals.
//  2. Wait for the rate limiter (bounded by ctx).
//  3. Query the route service and decode the polyline.
//  4. Cache and return; on any failure log and return the straight segment.
func (o *OSRM) ResolvePath(ctx context.Context, a, b geo.Point) []geo.Point {
	key := cacheKey(a, b)

	// 1. cache
	o.mu.RLock()
	cached, ok := o.cache[key]
	o.mu.RUnlock()
	if ok {
		o.observer.GeometryLookup(OutcomeCacheHit)
		return clonePoints(cached)
	}

	// 2-3. remote
	pts, err := o.fetch(ctx, a, b)
	if err != nil {
		o.logger.Warn("osrm lookup failed, using straight segment", "key", key, "error", err)
		o.observer.GeometryLookup(OutcomeFallback)
		return []geo.Point{a, b}
	}

	// 4. store
	o.mu.Lock()
	o.cache[key] = pts
	o.mu.Unlock()
	o.observer.GeometryLookup(OutcomeResolved)

	return clonePoints(pts)
}

// CacheLen returns the number of cached paths.
func (o *OSRM) CacheLen() int {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return len(o.cache)
}

// routeResponse is the subset of the OSRM route reply we read.
type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry string `json:"geometry"`
	} `json:"routes"`
}

func (o *OSRM) fetch(ctx context.Context, a, b geo.Point) ([]geo.Point, error) {
	if err := o.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("geometry: rate limit: %w", err)
	}

	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=polyline",
		o.baseURL, a.Lon, a.Lat, b.Lon, b.Lat)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("geometry: build request: %w", err)
	}
	req.Header.Set("User-Agent", o.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geometry: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", errStatus, resp.StatusCode)
	}

	var body routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("geometry: decode response: %w", err)
	}
	if body.Code != "Ok" || len(body.Routes) == 0 {
		return nil, fmt.Errorf("%w: code %q", errNoRoute, body.Code)
	}

	coords, _, err := polyline.DecodeCoords([]byte(body.Routes[0].Geometry))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errGeometry, err)
	}
	if len(coords) < 2 {
		return nil, fmt.Errorf("%w: %d points", errGeometry, len(coords))
	}
	pts := make([]geo.Point, len(coords))
	for i, c := range coords {
		pts[i] = geo.Point{Lat: c[0], Lon: c[1]}
	}

	return pts, nil
}

func clonePoints(p []geo.Point) []geo.Point {
	out := make([]geo.Point, len(p))
	copy(out, p)

	return out
}
