package testutil

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/preston-bernstein/sports-feed-service/internal/domain/feed"
)

// StubProvider returns the configured games, plays, and errors while counting calls.
type StubProvider struct {
	SportKey feed.Sport
	Games    []feed.Game
	Plays    []feed.PlayEvent
	GamesErr error
	PlaysErr error

	GameCalls atomic.Int32
	PlayCalls atomic.Int32
	LastLimit atomic.Int32
}

func (s *StubProvider) Sport() feed.Sport {
	if s.SportKey == "" {
		return feed.SportNBA
	}
	return s.SportKey
}

func (s *StubProvider) FetchGames(ctx context.Context) ([]feed.Game, error) {
	_ = ctx
	s.GameCalls.Add(1)
	return s.Games, s.GamesErr
}

func (s *StubProvider) FetchPlays(ctx context.Context, gameID string, limit int) ([]feed.PlayEvent, error) {
	_ = ctx
	_ = gameID
	s.PlayCalls.Add(1)
	s.LastLimit.Store(int32(limit))
	if s.PlaysErr != nil {
		return nil, s.PlaysErr
	}
	plays := s.Plays
	if limit > 0 && len(plays) > limit {
		plays = plays[:limit]
	}
	return plays, nil
}

// SamplePlays builds n plays numbered newest-first ("play n" ... "play 1").
func SamplePlays(n int) []feed.PlayEvent {
	plays := make([]feed.PlayEvent, 0, n)
	for i := n; i >= 1; i-- {
		plays = append(plays, feed.PlayEvent{
			Clock:       "05:00",
			Description: "play " + strconv.Itoa(i),
			TeamCode:    "BOS",
			Period:      1,
		})
	}
	return plays
}
