package nfl

import (
	"context"
	"net/url"
	"time"

	"github.com/preston-bernstein/sports-feed-service/internal/domain/feed"
	"github.com/preston-bernstein/sports-feed-service/internal/metrics"
	"github.com/preston-bernstein/sports-feed-service/internal/providers"
	"github.com/preston-bernstein/sports-feed-service/internal/providers/upstream"
)

// Config controls how the NFL client reaches ESPN.
type Config struct {
	BaseURL    string
	HTTPClient upstream.Doer
	Timeout    time.Duration
	Metrics    *metrics.Recorder
}

// Client reads ESPN's NFL scoreboard and game summary documents.
type Client struct {
	http *upstream.Client
}

// NewClient constructs an NFL client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		http: upstream.New(upstream.Config{
			Provider:       providerName,
			BaseURL:        cfg.BaseURL,
			DefaultBaseURL: defaultBaseURL,
			HTTPClient:     cfg.HTTPClient,
			Timeout:        cfg.Timeout,
			Metrics:        cfg.Metrics,
		}),
	}
}

func (c *Client) Sport() feed.Sport {
	return feed.SportNFL
}

// FetchGames retrieves the current scoreboard week.
func (c *Client) FetchGames(ctx context.Context) ([]feed.Game, error) {
	var payload scoreboardResponse
	if err := c.http.GetJSON(ctx, endpointScoreboard, scoreboardPath, &payload); err != nil {
		return nil, err
	}

	games := make([]feed.Game, 0, len(payload.Events))
	for i, e := range payload.Events {
		if e.ID == "" {
			return nil, providers.Malformed(providerName, endpointScoreboard, "event %d missing id", i)
		}
		games = append(games, mapGame(e))
	}
	return games, nil
}

// FetchPlays retrieves the most recent plays of a game, newest first.
// A summary without drives means the game has not kicked off.
func (c *Client) FetchPlays(ctx context.Context, gameID string, limit int) ([]feed.PlayEvent, error) {
	query := url.Values{"event": {gameID}}

	var payload summaryResponse
	if err := c.http.GetJSON(ctx, endpointSummary, summaryPath+"?"+query.Encode(), &payload); err != nil {
		return nil, err
	}
	return recentPlays(payload.Drives, limit), nil
}
