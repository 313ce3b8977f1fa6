package nhl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/sports-feed-service/internal/domain/feed"
	"github.com/preston-bernstein/sports-feed-service/internal/logging"
	"github.com/preston-bernstein/sports-feed-service/internal/metrics"
	"github.com/preston-bernstein/sports-feed-service/internal/providers"
	"github.com/preston-bernstein/sports-feed-service/internal/providers/upstream"
	"github.com/preston-bernstein/sports-feed-service/internal/store"
)

// Config controls how the NHL client reaches the NHL web API.
type Config struct {
	BaseURL    string
	HTTPClient upstream.Doer
	Timeout    time.Duration
	Metrics    *metrics.Recorder
	// Sides caches each game's home/away team ids. Defaults to an in-memory store.
	Sides  store.SideStore
	Logger *slog.Logger
}

// Client reads NHL scores, play-by-play, and landing documents.
type Client struct {
	http   *upstream.Client
	sides  store.SideStore
	logger *slog.Logger
	group  singleflight.Group
}

// NewClient constructs an NHL client with the provided configuration.
func NewClient(cfg Config) *Client {
	sides := cfg.Sides
	if sides == nil {
		sides = store.NewMemoryStore(store.DefaultTTL)
	}
	return &Client{
		http: upstream.New(upstream.Config{
			Provider:       providerName,
			BaseURL:        cfg.BaseURL,
			DefaultBaseURL: defaultBaseURL,
			HTTPClient:     cfg.HTTPClient,
			Timeout:        cfg.Timeout,
			Metrics:        cfg.Metrics,
		}),
		sides:  sides,
		logger: cfg.Logger,
	}
}

func (c *Client) Sport() feed.Sport {
	return feed.SportNHL
}

// FetchGames retrieves today's scores.
func (c *Client) FetchGames(ctx context.Context) ([]feed.Game, error) {
	var payload scoresResponse
	if err := c.http.GetJSON(ctx, endpointScores, scoresPath, &payload); err != nil {
		return nil, err
	}

	games := make([]feed.Game, 0, len(payload.Games))
	for i, g := range payload.Games {
		if g.ID == 0 {
			return nil, providers.Malformed(providerName, endpointScores, "game %d missing id", i)
		}
		games = append(games, mapGame(g))
	}
	return games, nil
}

// FetchPlays retrieves the most recent events of a game, newest first.
// On the first poll of a game the landing document is fetched alongside the
// play-by-play to resolve team sides; later polls reuse the cached sides.
func (c *Client) FetchPlays(ctx context.Context, gameID string, limit int) ([]feed.PlayEvent, error) {
	sides, cached := c.cachedSides(ctx, gameID)

	var (
		pbp    playByPlayResponse
		landed store.TeamSides
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.http.GetJSON(gctx, endpointPlayByPlay, fmt.Sprintf(playByPlayPath, url.PathEscape(gameID)), &pbp)
	})
	if !cached {
		g.Go(func() error {
			s, err := c.loadSides(gctx, gameID)
			if err != nil {
				if gctx.Err() != nil {
					return nil
				}
				// Sides only label events; play-by-play can still be served.
				logging.Warn(logging.FromContext(ctx, c.logger), "nhl landing lookup failed",
					slog.String(logging.FieldGameID, gameID),
					slog.String(logging.FieldErrorKind, string(providers.KindOf(err))),
					slog.Any("error", err),
				)
				return nil
			}
			landed = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !cached {
		sides = landed
		if !sides.Complete() {
			sides = sidesFrom(pbp.HomeTeam, pbp.AwayTeam)
			c.storeSides(ctx, gameID, sides)
		}
	}

	recent := providers.NewestFirst(pbp.Plays, limit)
	plays := make([]feed.PlayEvent, 0, len(recent))
	for _, p := range recent {
		plays = append(plays, mapPlay(p, sides))
	}
	return plays, nil
}

func (c *Client) cachedSides(ctx context.Context, gameID string) (store.TeamSides, bool) {
	sides, ok, err := c.sides.GetSides(ctx, gameID)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, c.logger), "nhl side lookup read failed",
			slog.String(logging.FieldGameID, gameID),
			slog.Any("error", err),
		)
		return store.TeamSides{}, false
	}
	return sides, ok && sides.Complete()
}

// loadSides fetches the landing document once per game across concurrent polls and caches its sides.
// The shared fetch is detached from the caller's cancellation so one abandoned poll
// cannot fail the others waiting on it; the upstream client still bounds it with its timeout.
func (c *Client) loadSides(ctx context.Context, gameID string) (store.TeamSides, error) {
	ch := c.group.DoChan(gameID, func() (any, error) {
		fetchCtx := context.WithoutCancel(ctx)
		var landing landingResponse
		if err := c.http.GetJSON(fetchCtx, endpointLanding, fmt.Sprintf(landingPath, url.PathEscape(gameID)), &landing); err != nil {
			return store.TeamSides{}, err
		}
		sides := sidesFrom(landing.HomeTeam, landing.AwayTeam)
		if !sides.Complete() {
			return store.TeamSides{}, providers.Malformed(providerName, endpointLanding, "landing missing team ids")
		}
		c.storeSides(fetchCtx, gameID, sides)
		return sides, nil
	})

	select {
	case <-ctx.Done():
		return store.TeamSides{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return store.TeamSides{}, res.Err
		}
		return res.Val.(store.TeamSides), nil
	}
}

func (c *Client) storeSides(ctx context.Context, gameID string, sides store.TeamSides) {
	if !sides.Complete() {
		return
	}
	if err := c.sides.SetSides(ctx, gameID, sides); err != nil {
		logging.Warn(logging.FromContext(ctx, c.logger), "nhl side lookup write failed",
			slog.String(logging.FieldGameID, gameID),
			slog.Any("error", err),
		)
	}
}
