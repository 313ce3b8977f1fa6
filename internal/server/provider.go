package server

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/sports-feed-service/internal/config"
	"github.com/preston-bernstein/sports-feed-service/internal/metrics"
	"github.com/preston-bernstein/sports-feed-service/internal/providers"
	"github.com/preston-bernstein/sports-feed-service/internal/providers/fixture"
	"github.com/preston-bernstein/sports-feed-service/internal/providers/nba"
	"github.com/preston-bernstein/sports-feed-service/internal/providers/nfl"
	"github.com/preston-bernstein/sports-feed-service/internal/providers/nhl"
	"github.com/preston-bernstein/sports-feed-service/internal/providers/upstream"
	"github.com/preston-bernstein/sports-feed-service/internal/store"
)

func selectProviders(cfg config.Config, sides store.SideStore, recorder *metrics.Recorder, httpClient *http.Client, logger *slog.Logger) []providers.FeedProvider {
	switch mode := normalizeProviderMode(cfg.Provider); mode {
	case config.ProviderLive:
		return liveProviders(cfg.Upstream, sides, recorder, httpClient, logger)
	case config.ProviderFixture:
		return fixture.All()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", mode))
		}
		return fixture.All()
	}
}

// newUpstreamHTTPClient returns the client shared by the live adapters so they reuse one connection pool.
func newUpstreamHTTPClient(up config.UpstreamConfig) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = upstreamIdleConnsPerHost
	return &http.Client{
		Timeout:   up.Timeout,
		Transport: transport,
	}
}

func liveProviders(up config.UpstreamConfig, sides store.SideStore, recorder *metrics.Recorder, httpClient *http.Client, logger *slog.Logger) []providers.FeedProvider {
	// A nil *http.Client must not become a non-nil Doer.
	var doer upstream.Doer
	if httpClient != nil {
		doer = httpClient
	}
	return []providers.FeedProvider{
		nba.NewClient(nba.Config{
			BaseURL:    up.NBABaseURL,
			HTTPClient: doer,
			Timeout:    up.Timeout,
			Metrics:    recorder,
		}),
		nfl.NewClient(nfl.Config{
			BaseURL:    up.ESPNBaseURL,
			HTTPClient: doer,
			Timeout:    up.Timeout,
			Metrics:    recorder,
		}),
		nhl.NewClient(nhl.Config{
			BaseURL:    up.NHLBaseURL,
			HTTPClient: doer,
			Timeout:    up.Timeout,
			Metrics:    recorder,
			Sides:      sides,
			Logger:     logger,
		}),
	}
}
