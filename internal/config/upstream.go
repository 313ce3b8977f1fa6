package config

import "time"

// UpstreamConfig controls how the sport adapters reach their providers.
type UpstreamConfig struct {
	Timeout     time.Duration
	NBABaseURL  string
	ESPNBaseURL string
	NHLBaseURL  string
}

func loadUpstream() UpstreamConfig {
	return UpstreamConfig{
		Timeout:     durationEnvOrDefault(envUpstreamTimeout, defaultUpstreamTimeout),
		NBABaseURL:  envOrDefault(envNBABaseURL, defaultNBABaseURL),
		ESPNBaseURL: envOrDefault(envESPNBaseURL, defaultESPNBaseURL),
		NHLBaseURL:  envOrDefault(envNHLBaseURL, defaultNHLBaseURL),
	}
}
