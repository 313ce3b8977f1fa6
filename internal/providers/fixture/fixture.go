// Package fixture serves deterministic games and plays for every sport without network access.
package fixture

import (
	"context"
	"fmt"
	"time"

	"github.com/preston-bernstein/sports-feed-service/internal/domain/feed"
	"github.com/preston-bernstein/sports-feed-service/internal/providers"
)

const (
	providerName = "fixture"
	scriptLength = 80
	// A live fixture game starts with revealed plays and gains one per revealEvery.
	initialRevealed = 20
	revealEvery     = 15 * time.Second
)

type fixtureGame struct {
	game   feed.Game
	script []feed.PlayEvent
}

// Provider returns a static set of games for one sport, useful for local testing and demos.
type Provider struct {
	sport   feed.Sport
	games   []fixtureGame
	started time.Time
	now     func() time.Time
}

// New creates a fixture provider for a sport. Unknown sports yield an empty schedule.
func New(sport feed.Sport) *Provider {
	p := &Provider{
		sport: sport,
		now:   time.Now,
	}
	p.started = p.now()
	for _, g := range schedule[sport] {
		p.games = append(p.games, fixtureGame{game: g, script: buildScript(sport, g)})
	}
	return p
}

// All returns one fixture provider per supported sport.
func All() []providers.FeedProvider {
	return []providers.FeedProvider{New(feed.SportNBA), New(feed.SportNFL), New(feed.SportNHL)}
}

func (p *Provider) Sport() feed.Sport {
	return p.sport
}

// FetchGames returns the fixed schedule.
func (p *Provider) FetchGames(ctx context.Context) ([]feed.Game, error) {
	_ = ctx
	games := make([]feed.Game, 0, len(p.games))
	for _, g := range p.games {
		games = append(games, g.game)
	}
	return games, nil
}

// FetchPlays returns plays revealed so far, newest first. Scheduled games have none;
// live games reveal more plays as time passes.
func (p *Provider) FetchPlays(ctx context.Context, gameID string, limit int) ([]feed.PlayEvent, error) {
	_ = ctx
	for _, g := range p.games {
		if g.game.GameID != gameID {
			continue
		}
		switch g.game.Status {
		case feed.StatusScheduled:
			return []feed.PlayEvent{}, nil
		case feed.StatusLive:
			return providers.NewestFirst(g.script[:p.revealed()], limit), nil
		default:
			return providers.NewestFirst(g.script, limit), nil
		}
	}
	return nil, providers.NewUpstreamError(providerName, "plays", providers.KindNotFound, 0, fmt.Errorf("unknown fixture game %q", gameID))
}

func (p *Provider) revealed() int {
	n := initialRevealed + int(p.now().Sub(p.started)/revealEvery)
	if n > scriptLength {
		return scriptLength
	}
	return n
}
