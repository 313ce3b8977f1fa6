package testutil

import (
	"github.com/preston-bernstein/sports-feed-service/internal/domain/feed"
)

// SampleGame returns a minimal live game fixture with the provided id.
func SampleGame(id string) feed.Game {
	return feed.Game{
		GameID:  id,
		Matchup: "AWY @ HOM",
		Status:  feed.StatusLive,
	}
}
