// SPDX-License-Identifier: MIT
// Package config loads process settings from the environment, reading a
// .env file first when one exists.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full process configuration.
type Config struct {
	Server ServerConfig
	App    AppConfig
	Graph  GraphConfig
	OSRM   OSRMConfig
	Redis  RedisConfig
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

// AppConfig holds environment and logging settings.
type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

// GraphConfig holds per-session graph settings.
type GraphConfig struct {
	MaxVertices      int
	NearestRadiusM   float64
	AnimationStep    time.Duration
	HistoryLimit     int
	HamiltonianLimit int // backtracking expansions; 0 is unbounded
}

// OSRMConfig holds the geometry resolver settings. An empty BaseURL turns
// road geometry off.
type OSRMConfig struct {
	BaseURL    string
	Timeout    time.Duration
	RatePerSec float64
}

// RedisConfig selects the saved-routes backend. An empty Addr keeps routes
// in memory.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load reads .env (if present) and the environment, then validates.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: getEnvAsList("CORS_ORIGINS", []string{"*"}),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Graph: GraphConfig{
			MaxVertices:      getEnvAsInt("MAX_VERTICES", 15),
			NearestRadiusM:   getEnvAsFloat("NEAREST_RADIUS_M", 100),
			AnimationStep:    time.Duration(getEnvAsInt("ANIMATION_STEP_MS", 500)) * time.Millisecond,
			HistoryLimit:     getEnvAsInt("HISTORY_LIMIT", 0),
			HamiltonianLimit: getEnvAsInt("HAMILTONIAN_LIMIT", 0),
		},
		OSRM: OSRMConfig{
			BaseURL:    getEnv("OSRM_BASE_URL", "http://router.project-osrm.org"),
			Timeout:    getEnvAsDuration("OSRM_TIMEOUT", 5*time.Second),
			RatePerSec: getEnvAsFloat("OSRM_RATE_PER_SEC", 1),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings the process cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("%w: PORT is required", ErrInvalid)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.Graph.MaxVertices < 2 {
		return fmt.Errorf("%w: MAX_VERTICES must be >= 2, got %d", ErrInvalid, c.Graph.MaxVertices)
	}
	if c.Graph.NearestRadiusM <= 0 {
		return fmt.Errorf("%w: NEAREST_RADIUS_M must be > 0, got %v", ErrInvalid, c.Graph.NearestRadiusM)
	}
	if c.Graph.AnimationStep <= 0 {
		return fmt.Errorf("%w: ANIMATION_STEP_MS must be > 0", ErrInvalid)
	}
	if c.Graph.HistoryLimit < 0 {
		return fmt.Errorf("%w: HISTORY_LIMIT must be >= 0, got %d", ErrInvalid, c.Graph.HistoryLimit)
	}
	if c.Graph.HamiltonianLimit < 0 {
		return fmt.Errorf("%w: HAMILTONIAN_LIMIT must be >= 0, got %d", ErrInvalid, c.Graph.HamiltonianLimit)
	}
	if c.OSRM.BaseURL != "" {
		if c.OSRM.Timeout <= 0 {
			return fmt.Errorf("%w: OSRM_TIMEOUT must be > 0", ErrInvalid)
		}
		if c.OSRM.RatePerSec <= 0 {
			return fmt.Errorf("%w: OSRM_RATE_PER_SEC must be > 0, got %v", ErrInvalid, c.OSRM.RatePerSec)
		}
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("%w: REDIS_DB must be >= 0, got %d", ErrInvalid, c.Redis.DB)
	}
	if len(c.Server.CORSOrigins) == 0 {
		return fmt.Errorf("%w: CORS_ORIGINS is empty", ErrInvalid)
	}

	return nil
}

// IsProduction reports whether APP_ENV is "production".
func (c *Config) IsProduction() bool { return c.App.Environment == "production" }

// SlogLevel maps LOG_LEVEL to a slog level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch c.App.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("%w: LOG_LEVEL %q", ErrInvalid, c.App.LogLevel)
}

// Addr is the listen address.
func (c *Config) Addr() string { return ":" + c.Server.Port }

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("invalid integer, using default", "key", key, "value", valueStr, "default", defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		slog.Warn("invalid number, using default", "key", key, "value", valueStr, "default", defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		slog.Warn("invalid duration, using default", "key", key, "value", valueStr, "default", defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}

	return out
}
