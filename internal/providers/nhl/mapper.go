package nhl

import (
	"strconv"
	"strings"

	"github.com/preston-bernstein/sports-feed-service/internal/domain/feed"
	"github.com/preston-bernstein/sports-feed-service/internal/store"
)

func mapGame(g gameResponse) feed.Game {
	return feed.Game{
		GameID:  strconv.FormatInt(g.ID, 10),
		Matchup: feed.FormatMatchup(g.AwayTeam.Abbrev, g.HomeTeam.Abbrev),
		Status:  mapStatus(g.GameState),
	}
}

// mapStatus maps gameState tokens; unknown tokens are treated as not started.
func mapStatus(state string) feed.GameStatus {
	switch strings.ToUpper(strings.TrimSpace(state)) {
	case "LIVE", "CRIT":
		return feed.StatusLive
	case "FINAL", "OFF":
		return feed.StatusFinal
	default:
		return feed.StatusScheduled
	}
}

func sidesFrom(home, away teamResponse) store.TeamSides {
	return store.TeamSides{
		HomeID:     home.ID,
		HomeAbbrev: home.Abbrev,
		AwayID:     away.ID,
		AwayAbbrev: away.Abbrev,
	}
}

var eventLabels = map[string]string{
	"goal":                "GOAL",
	"shot-on-goal":        "SHOT ON GOAL",
	"missed-shot":         "MISSED SHOT",
	"blocked-shot":        "BLOCKED SHOT",
	"hit":                 "HIT",
	"penalty":             "PENALTY",
	"delayed-penalty":     "DELAYED PENALTY",
	"faceoff":             "FACEOFF",
	"giveaway":            "GIVEAWAY",
	"takeaway":            "TAKEAWAY",
	"stoppage":            "STOPPAGE",
	"period-start":        "PERIOD START",
	"period-end":          "PERIOD END",
	"game-end":            "GAME END",
	"shootout-complete":   "SHOOTOUT COMPLETE",
	"failed-shot-attempt": "FAILED SHOT ATTEMPT",
}

// describe turns a typeDescKey into a readable label, appending shot, penalty, or stoppage detail.
func describe(typeKey string, d *playDetails) string {
	key := strings.ToLower(strings.TrimSpace(typeKey))
	label, ok := eventLabels[key]
	if !ok {
		label = humanize(key)
	}
	if label == "" {
		label = "EVENT"
	}
	if d == nil {
		return label
	}

	var detail string
	switch key {
	case "penalty", "delayed-penalty":
		detail = humanize(d.DescKey)
		if detail != "" && d.Duration > 0 {
			detail += ", " + strconv.Itoa(d.Duration) + " MIN"
		}
	case "stoppage":
		detail = humanize(d.Reason)
	default:
		detail = humanize(d.ShotType)
	}
	if detail == "" {
		return label
	}
	return label + " (" + detail + ")"
}

func humanize(key string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(key), "-", " "))
}

func mapPlay(p playResponse, sides store.TeamSides) feed.PlayEvent {
	team := leagueMarker
	var score string
	if p.Details != nil {
		if abbrev, ok := sides.Abbrev(p.Details.EventOwnerTeamID); ok {
			team = abbrev
		}
		if strings.EqualFold(p.TypeDescKey, typeGoal) && p.Details.HomeScore != nil && p.Details.AwayScore != nil {
			score = feed.FormatScore(*p.Details.HomeScore, *p.Details.AwayScore)
		}
	}
	return feed.PlayEvent{
		Clock:       p.TimeRemaining,
		Description: describe(p.TypeDescKey, p.Details),
		Score:       score,
		TeamCode:    team,
		Period:      p.PeriodDescriptor.Number,
	}
}
