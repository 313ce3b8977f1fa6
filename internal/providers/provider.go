package providers

import (
	"context"

	"github.com/preston-bernstein/sports-feed-service/internal/domain/feed"
)

// FeedProvider adapts one sport's upstream feeds to the shared game and play shapes.
type FeedProvider interface {
	// Sport reports the sport key the provider serves.
	Sport() feed.Sport
	// FetchGames returns today's games with statuses already mapped onto the shared enum.
	FetchGames(ctx context.Context) ([]feed.Game, error)
	// FetchPlays returns at most limit plays, most recent first.
	// An empty slice with a nil error means the game has no plays yet.
	FetchPlays(ctx context.Context, gameID string, limit int) ([]feed.PlayEvent, error)
}
