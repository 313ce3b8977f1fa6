package upstream

import (
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 4 * time.Second

// Doer is the subset of *http.Client used by the upstream client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client Doer, timeout time.Duration) Doer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: timeout}
}

func resolveTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return defaultTimeout
	}
	return timeout
}

func normalizeBaseURL(raw, fallback string) string {
	if strings.TrimSpace(raw) == "" {
		raw = fallback
	}
	return strings.TrimSuffix(strings.TrimSpace(raw), "/")
}
