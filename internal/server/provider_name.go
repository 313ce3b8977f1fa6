package server

import (
	"strings"

	"github.com/preston-bernstein/sports-feed-service/internal/config"
)

// normalizeProviderMode lower-cases the configured mode; empty means live.
func normalizeProviderMode(raw string) string {
	mode := strings.ToLower(strings.TrimSpace(raw))
	if mode == "" {
		return config.ProviderLive
	}
	return mode
}
