package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

// TracingConfig controls span export. An empty endpoint keeps the no-op tracer.
type TracingConfig struct {
	Endpoint    string
	ServiceName string
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}

func loadTracing() TracingConfig {
	return TracingConfig{
		Endpoint:    envOrDefault(envTracingEndpoint, ""),
		ServiceName: envOrDefault(envOtelService, defaultServiceName),
	}
}
