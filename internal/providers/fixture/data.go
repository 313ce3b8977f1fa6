package fixture

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/sports-feed-service/internal/domain/feed"
)

var schedule = map[feed.Sport][]feed.Game{
	feed.SportNBA: {
		{GameID: "0022400001", Matchup: "LAL @ BOS", Status: feed.StatusLive},
		{GameID: "0022400002", Matchup: "MIA @ GSW", Status: feed.StatusScheduled},
		{GameID: "0022400003", Matchup: "PHX @ DEN", Status: feed.StatusFinal},
	},
	feed.SportNFL: {
		{GameID: "401671001", Matchup: "KC @ BUF", Status: feed.StatusLive},
		{GameID: "401671002", Matchup: "DAL @ PHI", Status: feed.StatusScheduled},
		{GameID: "401671003", Matchup: "SF @ SEA", Status: feed.StatusFinal},
	},
	feed.SportNHL: {
		{GameID: "2024020001", Matchup: "MTL @ TOR", Status: feed.StatusLive},
		{GameID: "2024020002", Matchup: "FLA @ BOS", Status: feed.StatusScheduled},
		{GameID: "2024020003", Matchup: "CGY @ EDM", Status: feed.StatusFinal},
	},
}

type sportShape struct {
	periods       int
	periodMinutes int
	plays         []string
	scoring       map[int]int // play template index -> points
}

var shapes = map[feed.Sport]sportShape{
	feed.SportNBA: {
		periods:       4,
		periodMinutes: 12,
		plays:         []string{"%s driving layup", "%s defensive rebound", "%s 26' 3PT jump shot", "%s personal foul", "%s turnover", "%s free throw 1 of 2"},
		scoring:       map[int]int{0: 2, 2: 3, 5: 1},
	},
	feed.SportNFL: {
		periods:       4,
		periodMinutes: 15,
		plays:         []string{"%s rush up the middle for 4 yards", "%s pass short right complete for 9 yards", "%s pass incomplete deep left", "%s punt for 45 yards", "%s 32 yard field goal is GOOD", "%s pass for 18 yards, TOUCHDOWN"},
		scoring:       map[int]int{4: 3, 5: 7},
	},
	feed.SportNHL: {
		periods:       3,
		periodMinutes: 20,
		plays:         []string{"FACEOFF", "SHOT ON GOAL (WRIST)", "HIT", "BLOCKED SHOT", "PENALTY (TRIPPING, 2 MIN)", "GOAL (SNAP)"},
		scoring:       map[int]int{5: 1},
	},
}

// buildScript produces a chronological play log alternating between the two teams.
func buildScript(sport feed.Sport, g feed.Game) []feed.PlayEvent {
	shape, ok := shapes[sport]
	if !ok {
		return nil
	}
	away, home := splitMatchup(g.Matchup)
	perPeriod := scriptLength / shape.periods
	periodSeconds := shape.periodMinutes * 60

	script := make([]feed.PlayEvent, 0, scriptLength)
	var homeScore, awayScore int
	for i := 0; i < scriptLength; i++ {
		team, isHome := away, false
		if i%2 == 1 {
			team, isHome = home, true
		}
		tmpl := (i * 7 / 3) % len(shape.plays)
		desc := shape.plays[tmpl]
		if strings.Contains(desc, "%s") {
			desc = fmt.Sprintf(desc, team)
		}

		var score string
		if pts, scored := shape.scoring[tmpl]; scored {
			if isHome {
				homeScore += pts
			} else {
				awayScore += pts
			}
			score = feed.FormatScore(homeScore, awayScore)
		}

		period := i/perPeriod + 1
		if period > shape.periods {
			period = shape.periods
		}
		remaining := periodSeconds - (i%perPeriod)*periodSeconds/perPeriod
		script = append(script, feed.PlayEvent{
			Clock:       fmt.Sprintf("%02d:%02d", remaining/60, remaining%60),
			Description: desc,
			Score:       score,
			TeamCode:    team,
			Period:      period,
		})
	}
	return script
}

func splitMatchup(matchup string) (away, home string) {
	parts := strings.SplitN(matchup, " @ ", 2)
	if len(parts) != 2 {
		return matchup, matchup
	}
	return parts[0], parts[1]
}
