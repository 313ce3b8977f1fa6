package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envPlayWindow      = "PBP_WINDOW"
	envUpstreamTimeout = "UPSTREAM_TIMEOUT"
	envNBABaseURL      = "NBA_BASE_URL"
	envESPNBaseURL     = "ESPN_BASE_URL"
	envNHLBaseURL      = "NHL_BASE_URL"
	envSideCacheTTL    = "SIDE_CACHE_TTL"
	envRedisURL        = "REDIS_URL"
	envCORSOrigins     = "CORS_ORIGINS"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envTracingEndpoint = "TRACING_ENDPOINT"

	defaultPort     = "8000"
	defaultProvider = ProviderLive
	// Most recent plays served per request.
	defaultPlayWindow = 50
	// Per upstream call; a slow provider must not stall a request.
	defaultUpstreamTimeout = 4 * time.Second
	defaultNBABaseURL      = "https://cdn.nba.com/static/json/liveData"
	defaultESPNBaseURL     = "https://site.api.espn.com/apis/site/v2/sports"
	defaultNHLBaseURL      = "https://api-web.nhle.com/v1"
	// NHL team side lookups live for roughly one game session.
	defaultSideCacheTTL = 6 * time.Hour
	defaultCORSOrigins  = "*"
	defaultMetricsPort  = "9090"
	defaultServiceName  = "sports-feed-service"
)

// Provider modes.
const (
	ProviderLive    = "live"
	ProviderFixture = "fixture"
)
