// Package upstream is the JSON-over-HTTP transport shared by the sport adapters.
package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/preston-bernstein/sports-feed-service/internal/metrics"
	"github.com/preston-bernstein/sports-feed-service/internal/providers"
	"github.com/preston-bernstein/sports-feed-service/internal/tracing"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config controls how a Client reaches one provider host.
type Config struct {
	Provider       string
	BaseURL        string
	DefaultBaseURL string
	HTTPClient     Doer
	Timeout        time.Duration
	Headers        http.Header
	// NotFoundStatuses lists status codes that mean "no document for this id yet". Defaults to 404.
	NotFoundStatuses []int
	Metrics          *metrics.Recorder
}

// Client performs read-only GETs against a provider and decodes JSON bodies.
type Client struct {
	provider   string
	baseURL    string
	httpClient Doer
	timeout    time.Duration
	headers    http.Header
	notFound   map[int]struct{}
	metrics    *metrics.Recorder
	now        func() time.Time
}

// New constructs a Client with the provided configuration.
func New(cfg Config) *Client {
	timeout := resolveTimeout(cfg.Timeout)
	statuses := cfg.NotFoundStatuses
	if len(statuses) == 0 {
		statuses = []int{http.StatusNotFound}
	}
	notFound := make(map[int]struct{}, len(statuses))
	for _, s := range statuses {
		notFound[s] = struct{}{}
	}
	return &Client{
		provider:   cfg.Provider,
		baseURL:    normalizeBaseURL(cfg.BaseURL, cfg.DefaultBaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, timeout),
		timeout:    timeout,
		headers:    cfg.Headers.Clone(),
		notFound:   notFound,
		metrics:    cfg.Metrics,
		now:        time.Now,
	}
}

// BaseURL returns the normalized base URL requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetJSON fetches baseURL+path and decodes the body into out.
// endpoint labels the call in errors, spans, and metrics.
// Every failure is returned as a *providers.UpstreamError.
func (c *Client) GetJSON(ctx context.Context, endpoint, path string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	ctx, span := tracing.StartSpan(ctx, "upstream "+c.provider+" "+endpoint)
	defer span.End()
	span.SetAttributes(
		attribute.String("provider", c.provider),
		attribute.String("endpoint", endpoint),
	)

	start := c.now()
	err := c.getJSON(ctx, endpoint, path, out)
	kind := providers.KindOf(err)
	c.metrics.RecordProviderAttempt(c.provider, endpoint, c.now().Sub(start), string(kind))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(kind))
	}
	return err
}

func (c *Client) getJSON(ctx context.Context, endpoint, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return providers.NewUpstreamError(c.provider, endpoint, providers.KindUpstreamUnavailable, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	for key, values := range c.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return providers.NewUpstreamError(c.provider, endpoint, providers.KindUpstreamUnavailable, 0, err)
	}
	defer resp.Body.Close()

	if _, ok := c.notFound[resp.StatusCode]; ok {
		return providers.NewUpstreamError(c.provider, endpoint, providers.KindNotFound, resp.StatusCode, nil)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return providers.NewUpstreamError(c.provider, endpoint, providers.KindUpstreamUnavailable, resp.StatusCode,
			fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if ctx.Err() != nil {
			return providers.NewUpstreamError(c.provider, endpoint, providers.KindUpstreamUnavailable, resp.StatusCode, err)
		}
		return providers.NewUpstreamError(c.provider, endpoint, providers.KindMalformedPayload, resp.StatusCode, fmt.Errorf("decoding response: %w", err))
	}
	return nil
}
