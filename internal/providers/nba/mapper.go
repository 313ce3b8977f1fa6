package nba

import (
	"strings"

	"github.com/preston-bernstein/sports-feed-service/internal/domain/feed"
)

func mapGame(g scoreboardGame) feed.Game {
	return feed.Game{
		GameID:  g.GameID,
		Matchup: feed.FormatMatchup(g.AwayTeam.TeamTricode, g.HomeTeam.TeamTricode),
		Status:  mapStatus(g.GameStatus),
	}
}

// mapStatus maps gameStatus codes; anything unrecognized is treated as not yet started.
func mapStatus(code int) feed.GameStatus {
	switch code {
	case statusCodeScheduled:
		return feed.StatusScheduled
	case statusCodeLive:
		return feed.StatusLive
	case statusCodeFinal:
		return feed.StatusFinal
	default:
		return feed.StatusScheduled
	}
}

func mapAction(a actionResponse) feed.PlayEvent {
	desc := strings.TrimSpace(a.Description)
	if desc == "" {
		desc = strings.TrimSpace(a.ActionType)
	}
	if desc == "" {
		desc = fallbackDescription
	}
	team := strings.TrimSpace(a.TeamTricode)
	if team == "" {
		team = leagueMarker
	}
	return feed.PlayEvent{
		Clock:       FormatClock(a.Clock),
		Description: desc,
		Score:       formatScore(a.ScoreHome, a.ScoreAway),
		TeamCode:    team,
		Period:      a.Period,
	}
}

func formatScore(home, away string) string {
	home, away = strings.TrimSpace(home), strings.TrimSpace(away)
	if home == "" && away == "" {
		return ""
	}
	if home == "" {
		home = "0"
	}
	if away == "" {
		away = "0"
	}
	return home + "-" + away
}
