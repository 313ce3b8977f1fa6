// Package feed is the boundary between HTTP handlers and sport providers.
// Its operations never fail on upstream trouble; they degrade to fallback payloads.
package feed

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domain "github.com/preston-bernstein/sports-feed-service/internal/domain/feed"
	"github.com/preston-bernstein/sports-feed-service/internal/logging"
	"github.com/preston-bernstein/sports-feed-service/internal/metrics"
	"github.com/preston-bernstein/sports-feed-service/internal/providers"
)

// DefaultPlayWindow is how many plays a feed returns when no window is configured.
const DefaultPlayWindow = 50

const reasonEmpty = "empty"

// ErrUnknownSport is returned for a sport key with no registered provider.
var ErrUnknownSport = errors.New("unknown sport")

// Service resolves providers by sport and normalizes their failures.
type Service struct {
	registry *providers.Registry
	window   int
	metrics  *metrics.Recorder
	logger   *slog.Logger
}

// NewService constructs a Service. A non-positive window uses DefaultPlayWindow.
func NewService(registry *providers.Registry, window int, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	if window <= 0 {
		window = DefaultPlayWindow
	}
	return &Service{
		registry: registry,
		window:   window,
		metrics:  recorder,
		logger:   logger,
	}
}

// Window returns the configured play window.
func (s *Service) Window() int {
	return s.window
}

// Sports lists the sport keys that can be served.
func (s *Service) Sports() []domain.Sport {
	return s.registry.Sports()
}

// ListGames returns today's games for a sport. Upstream failures yield an empty list.
func (s *Service) ListGames(ctx context.Context, sport domain.Sport) ([]domain.Game, error) {
	p, ok := s.registry.Lookup(sport)
	if !ok {
		return nil, ErrUnknownSport
	}

	start := time.Now()
	games, err := p.FetchGames(ctx)
	if err != nil {
		s.fallback(ctx, sport, "games", "", providers.KindOf(err), err)
		return []domain.Game{}, nil
	}
	if games == nil {
		games = []domain.Game{}
	}
	logging.Debug(logging.FromContext(ctx, s.logger), "games listed",
		slog.String(logging.FieldSport, string(sport)),
		slog.Int(logging.FieldCount, len(games)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return games, nil
}

// ListRecentPlays returns at most Window plays for a game, newest first.
// An empty or failed feed yields an inactive result with a placeholder message.
func (s *Service) ListRecentPlays(ctx context.Context, sport domain.Sport, gameID string) (domain.PlayFeedResult, error) {
	p, ok := s.registry.Lookup(sport)
	if !ok {
		return domain.PlayFeedResult{}, ErrUnknownSport
	}

	plays, err := p.FetchPlays(ctx, gameID, s.window)
	if err != nil {
		kind := providers.KindOf(err)
		s.fallback(ctx, sport, "plays", gameID, kind, err)
		return domain.NewInactiveResult(fallbackMessage(sport, kind)), nil
	}
	if len(plays) == 0 {
		s.metrics.RecordFallback(string(sport), reasonEmpty)
		return domain.NewInactiveResult(WaitingMessage(sport)), nil
	}
	if len(plays) > s.window {
		plays = plays[:s.window]
	}
	return domain.NewActiveResult(plays), nil
}

func (s *Service) fallback(ctx context.Context, sport domain.Sport, endpoint, gameID string, kind providers.ErrorKind, err error) {
	s.metrics.RecordFallback(string(sport), string(kind))

	level := slog.LevelError
	if kind == providers.KindNotFound {
		level = slog.LevelInfo
	}
	attrs := []any{
		slog.String(logging.FieldSport, string(sport)),
		slog.String(logging.FieldEndpoint, endpoint),
		slog.String(logging.FieldErrorKind, string(kind)),
		slog.Any("error", err),
	}
	if gameID != "" {
		attrs = append(attrs, slog.String(logging.FieldGameID, gameID))
	}
	if logger := logging.FromContext(ctx, s.logger); logger != nil {
		logger.Log(ctx, level, "feed fallback", attrs...)
	}
}
