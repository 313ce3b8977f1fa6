package server

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/sports-feed-service/internal/config"
	"github.com/preston-bernstein/sports-feed-service/internal/metrics"
	"github.com/preston-bernstein/sports-feed-service/internal/providers"
	"github.com/preston-bernstein/sports-feed-service/internal/store"
)

// providerFactory assembles the sport registry with the shared instrumentation wrapper.
type providerFactory struct {
	logger     *slog.Logger
	metrics    *metrics.Recorder
	sides      store.SideStore
	httpClient *http.Client
}

// newProviderFactory builds a factory. A nil httpClient lets each adapter build its own.
func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder, sides store.SideStore, httpClient *http.Client) providerFactory {
	return providerFactory{logger: logger, metrics: metrics, sides: sides, httpClient: httpClient}
}

func (f providerFactory) build(cfg config.Config) *providers.Registry {
	registry := providers.NewRegistry()
	for _, p := range selectProviders(cfg, f.sides, f.metrics, f.httpClient, f.logger) {
		registry.Register(providers.NewInstrumentedProvider(p, f.logger))
	}
	return registry
}
