package nba

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/preston-bernstein/sports-feed-service/internal/domain/feed"
	"github.com/preston-bernstein/sports-feed-service/internal/metrics"
	"github.com/preston-bernstein/sports-feed-service/internal/providers"
	"github.com/preston-bernstein/sports-feed-service/internal/providers/upstream"
)

// Config controls how the NBA client reaches the live data CDN.
type Config struct {
	BaseURL    string
	HTTPClient upstream.Doer
	Timeout    time.Duration
	Metrics    *metrics.Recorder
}

// Client reads the NBA live scoreboard and play-by-play documents.
type Client struct {
	http *upstream.Client
}

// NewClient constructs an NBA client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		http: upstream.New(upstream.Config{
			Provider:       providerName,
			BaseURL:        cfg.BaseURL,
			DefaultBaseURL: defaultBaseURL,
			HTTPClient:     cfg.HTTPClient,
			Timeout:        cfg.Timeout,
			Headers: http.Header{
				"User-Agent": {browserUserAgent},
				"Referer":    {browserReferer},
				"Origin":     {"https://www.nba.com"},
			},
			// The CDN answers 403 for play-by-play objects that are not published yet.
			NotFoundStatuses: []int{http.StatusForbidden, http.StatusNotFound},
			Metrics:          cfg.Metrics,
		}),
	}
}

func (c *Client) Sport() feed.Sport {
	return feed.SportNBA
}

// FetchGames retrieves today's scoreboard.
func (c *Client) FetchGames(ctx context.Context) ([]feed.Game, error) {
	var payload scoreboardResponse
	if err := c.http.GetJSON(ctx, endpointScoreboard, scoreboardPath, &payload); err != nil {
		return nil, err
	}
	if payload.Scoreboard == nil {
		return nil, providers.Malformed(providerName, endpointScoreboard, "missing scoreboard")
	}

	games := make([]feed.Game, 0, len(payload.Scoreboard.Games))
	for i, g := range payload.Scoreboard.Games {
		if g.GameID == "" {
			return nil, providers.Malformed(providerName, endpointScoreboard, "game %d missing gameId", i)
		}
		games = append(games, mapGame(g))
	}
	return games, nil
}

// FetchPlays retrieves the most recent actions for a game, newest first.
func (c *Client) FetchPlays(ctx context.Context, gameID string, limit int) ([]feed.PlayEvent, error) {
	path := fmt.Sprintf(playByPlayPath, url.PathEscape(gameID))

	var payload playByPlayResponse
	if err := c.http.GetJSON(ctx, endpointPlayByPlay, path, &payload); err != nil {
		return nil, err
	}
	if payload.Game == nil {
		return nil, providers.Malformed(providerName, endpointPlayByPlay, "missing game")
	}

	recent := providers.NewestFirst(payload.Game.Actions, limit)
	plays := make([]feed.PlayEvent, 0, len(recent))
	for _, a := range recent {
		plays = append(plays, mapAction(a))
	}
	return plays, nil
}
