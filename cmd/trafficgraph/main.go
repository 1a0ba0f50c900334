// SPDX-License-Identifier: MIT
// Command trafficgraph serves the traffic graph playground API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/trafficgraph/engine"
	"github.com/katalvlaran/trafficgraph/geometry"
	"github.com/katalvlaran/trafficgraph/internal/config"
	"github.com/katalvlaran/trafficgraph/internal/httpapi"
	"github.com/katalvlaran/trafficgraph/internal/metrics"
	"github.com/katalvlaran/trafficgraph/routes"
	"github.com/katalvlaran/trafficgraph/session"
	"github.com/katalvlaran/trafficgraph/store"
)

const serviceName = "trafficgraph"

func main() {
	if err := run(); err != nil {
		slog.Error("trafficgraph stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	saved, closeRoutes, err := openRoutes(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRoutes()

	var resolver geometry.Resolver = geometry.Straight{}
	if cfg.OSRM.BaseURL != "" {
		resolver = geometry.NewOSRM(cfg.OSRM.BaseURL,
			geometry.WithTimeout(cfg.OSRM.Timeout),
			geometry.WithRateLimit(cfg.OSRM.RatePerSec, 1),
			geometry.WithUserAgent(serviceName+"/"+cfg.App.Version),
			geometry.WithLogger(logger),
			geometry.WithObserver(m),
		)
	}

	sessions := session.NewManager(
		session.WithStoreOptions(store.WithMaxVertices(cfg.Graph.MaxVertices)),
		session.WithEngine(engine.New(engine.WithHamiltonianLimit(cfg.Graph.HamiltonianLimit))),
		session.WithHistoryLimit(cfg.Graph.HistoryLimit),
		session.WithNearestRadius(cfg.Graph.NearestRadiusM),
		session.WithLogger(logger),
		session.WithObserver(m),
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpapi.BuildRouter(httpapi.RouterDeps{
		ServiceName:   serviceName,
		Version:       cfg.App.Version,
		Sessions:      sessions,
		Routes:        saved,
		Geometry:      resolver,
		Metrics:       m,
		Logger:        logger,
		CORSOrigins:   cfg.Server.CORSOrigins,
		AnimationStep: cfg.Graph.AnimationStep,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "env", cfg.App.Environment, "max_vertices", cfg.Graph.MaxVertices)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func newLogger(cfg *config.Config) *slog.Logger {
	level, _ := cfg.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}

	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// openRoutes picks the Redis store when REDIS_ADDR is set, memory otherwise.
func openRoutes(ctx context.Context, cfg *config.Config) (routes.Store, func(), error) {
	if cfg.Redis.Addr == "" {
		slog.Info("saved routes kept in memory")
		return routes.NewMemory(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis %s: %w", cfg.Redis.Addr, err)
	}
	slog.Info("saved routes kept in redis", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)

	return routes.NewRedis(client), func() { _ = client.Close() }, nil
}
