package providers

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/preston-bernstein/sports-feed-service/internal/domain/feed"
	"github.com/preston-bernstein/sports-feed-service/internal/logging"
	"github.com/preston-bernstein/sports-feed-service/internal/tracing"
)

const (
	operationGames = "games"
	operationPlays = "plays"
)

// instrumentedProvider wraps a FeedProvider with a span and a structured log record per operation.
type instrumentedProvider struct {
	inner  FeedProvider
	logger *slog.Logger
	now    func() time.Time
}

// NewInstrumentedProvider decorates inner so every failure is logged with sport, operation, and error kind.
func NewInstrumentedProvider(inner FeedProvider, logger *slog.Logger) FeedProvider {
	return &instrumentedProvider{inner: inner, logger: logger, now: time.Now}
}

func (p *instrumentedProvider) Sport() feed.Sport {
	return p.inner.Sport()
}

func (p *instrumentedProvider) FetchGames(ctx context.Context) ([]feed.Game, error) {
	ctx, finish := p.begin(ctx, operationGames, "")
	games, err := p.inner.FetchGames(ctx)
	finish(err, slog.Int(logging.FieldCount, len(games)))
	return games, err
}

func (p *instrumentedProvider) FetchPlays(ctx context.Context, gameID string, limit int) ([]feed.PlayEvent, error) {
	ctx, finish := p.begin(ctx, operationPlays, gameID)
	plays, err := p.inner.FetchPlays(ctx, gameID, limit)
	finish(err, slog.Int(logging.FieldCount, len(plays)))
	return plays, err
}

// Unwrap exposes the decorated provider.
func (p *instrumentedProvider) Unwrap() FeedProvider {
	return p.inner
}

func (p *instrumentedProvider) begin(ctx context.Context, operation, gameID string) (context.Context, func(error, ...any)) {
	sport := string(p.inner.Sport())
	start := p.now()
	ctx, span := tracing.StartSpan(ctx, sport+"."+operation)
	span.SetAttributes(
		attribute.String(logging.FieldSport, sport),
		attribute.String(logging.FieldEndpoint, operation),
	)
	if gameID != "" {
		span.SetAttributes(attribute.String(logging.FieldGameID, gameID))
	}

	return ctx, func(err error, attrs ...any) {
		defer span.End()
		attrs = append(attrs,
			slog.String(logging.FieldEndpoint, operation),
			slog.Int64(logging.FieldDurationMS, p.now().Sub(start).Milliseconds()),
		)
		if gameID != "" {
			attrs = append(attrs, slog.String(logging.FieldGameID, gameID))
		}
		if err == nil {
			logWithProvider(ctx, p.logger, slog.LevelDebug, sport, "provider fetch ok", attrs...)
			return
		}

		kind := KindOf(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, string(kind))
		level := slog.LevelWarn
		if kind == KindNotFound {
			level = slog.LevelInfo
		}
		attrs = append(attrs, slog.String(logging.FieldErrorKind, string(kind)), slog.Any("error", err))
		logWithProvider(ctx, p.logger, level, sport, "provider fetch failed", attrs...)
	}
}
