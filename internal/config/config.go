package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	Provider    string
	PlayWindow  int
	CORSOrigins []string
	Upstream    UpstreamConfig
	SideCache   SideCacheConfig
	Metrics     MetricsConfig
	Tracing     TracingConfig
}

// SideCacheConfig controls where NHL per-game team side lookups are kept.
type SideCacheConfig struct {
	TTL      time.Duration
	RedisURL string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		Provider:    envOrDefault(envProvider, defaultProvider),
		PlayWindow:  intEnvOrDefault(envPlayWindow, defaultPlayWindow),
		CORSOrigins: listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		Upstream:    loadUpstream(),
		SideCache: SideCacheConfig{
			TTL:      durationEnvOrDefault(envSideCacheTTL, defaultSideCacheTTL),
			RedisURL: envOrDefault(envRedisURL, ""),
		},
		Metrics: loadMetrics(),
		Tracing: loadTracing(),
	}
}

// LoadEnvFile seeds the process environment from .env style files.
// Missing files are not an error; variables already set are never overridden.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
