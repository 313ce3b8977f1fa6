package nfl

import (
	"strings"

	"github.com/preston-bernstein/sports-feed-service/internal/domain/feed"
)

func mapGame(e eventResponse) feed.Game {
	matchup := e.ShortName
	if matchup == "" {
		matchup = e.Name
	}
	return feed.Game{
		GameID:  e.ID,
		Matchup: matchup,
		Status:  mapStatus(e.Status.Type.State),
	}
}

// mapStatus maps ESPN's state vocabulary case-insensitively; unknown states are treated as not started.
func mapStatus(state string) feed.GameStatus {
	switch strings.ToLower(strings.TrimSpace(state)) {
	case statePre:
		return feed.StatusScheduled
	case stateIn:
		return feed.StatusLive
	case statePost:
		return feed.StatusFinal
	default:
		return feed.StatusScheduled
	}
}

// recentPlays walks drives newest first: the current drive, then previous drives
// from last to first, each drive's plays from last to first. It stops at limit.
func recentPlays(d *drivesResponse, limit int) []feed.PlayEvent {
	if d == nil {
		return []feed.PlayEvent{}
	}
	drives := make([]driveResponse, 0, len(d.Previous)+1)
	if d.Current != nil {
		drives = append(drives, *d.Current)
	}
	for i := len(d.Previous) - 1; i >= 0; i-- {
		// ESPN repeats the in-progress drive as the last previous entry.
		if d.Current != nil && d.Current.ID != "" && d.Previous[i].ID == d.Current.ID {
			continue
		}
		drives = append(drives, d.Previous[i])
	}

	plays := make([]feed.PlayEvent, 0)
	for _, drive := range drives {
		for i := len(drive.Plays) - 1; i >= 0; i-- {
			if limit > 0 && len(plays) >= limit {
				return plays
			}
			plays = append(plays, mapPlay(drive.Plays[i], drive.Team.Abbreviation))
		}
	}
	return plays
}

func mapPlay(p playResponse, driveTeam string) feed.PlayEvent {
	desc := strings.TrimSpace(p.Text)
	if desc == "" {
		desc = strings.TrimSpace(p.Type.Text)
	}
	team := strings.TrimSpace(driveTeam)
	if team == "" {
		team = leagueMarker
	}
	var score string
	if p.HomeScore != nil && p.AwayScore != nil {
		score = feed.FormatScore(*p.HomeScore, *p.AwayScore)
	}
	return feed.PlayEvent{
		Clock:       p.Clock.DisplayValue,
		Description: desc,
		Score:       score,
		TeamCode:    team,
		Period:      p.Period.Number,
	}
}
