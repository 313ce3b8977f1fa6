package nhl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/preston-bernstein/sports-feed-service/internal/domain/feed"
	"github.com/preston-bernstein/sports-feed-service/internal/store"
)

func intPtr(v int) *int { return &v }

var torMtl = store.TeamSides{HomeID: 10, HomeAbbrev: "TOR", AwayID: 8, AwayAbbrev: "MTL"}

func TestMapStatus(t *testing.T) {
	cases := map[string]feed.GameStatus{
		"FUT":   feed.StatusScheduled,
		"PRE":   feed.StatusScheduled,
		"LIVE":  feed.StatusLive,
		"CRIT":  feed.StatusLive,
		"FINAL": feed.StatusFinal,
		"OFF":   feed.StatusFinal,
		"live":  feed.StatusLive,
		"PPD":   feed.StatusScheduled,
		"":      feed.StatusScheduled,
	}
	for state, want := range cases {
		assert.Equal(t, want, mapStatus(state), "state %q", state)
	}
}

func TestMapGame(t *testing.T) {
	g := mapGame(gameResponse{
		ID:        2024020001,
		GameState: "LIVE",
		HomeTeam:  teamResponse{ID: 10, Abbrev: "TOR"},
		AwayTeam:  teamResponse{ID: 8, Abbrev: "MTL"},
	})
	assert.Equal(t, feed.Game{GameID: "2024020001", Matchup: "MTL @ TOR", Status: feed.StatusLive}, g)
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		key     string
		details *playDetails
		want    string
	}{
		{key: "goal", details: &playDetails{ShotType: "wrist"}, want: "GOAL (WRIST)"},
		{key: "shot-on-goal", details: &playDetails{ShotType: "snap"}, want: "SHOT ON GOAL (SNAP)"},
		{key: "hit", details: &playDetails{}, want: "HIT"},
		{key: "penalty", details: &playDetails{DescKey: "high-sticking", Duration: 2}, want: "PENALTY (HIGH STICKING, 2 MIN)"},
		{key: "stoppage", details: &playDetails{Reason: "icing"}, want: "STOPPAGE (ICING)"},
		{key: "period-start", want: "PERIOD START"},
		{key: "some-new-event", want: "SOME NEW EVENT"},
		{key: "", want: "EVENT"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, describe(tc.key, tc.details), "key %q", tc.key)
	}
}

func TestMapPlayResolvesTeamAndGoalScore(t *testing.T) {
	goal := mapPlay(playResponse{
		PeriodDescriptor: periodDescriptor{Number: 2},
		TimeRemaining:    "14:21",
		TypeDescKey:      "goal",
		Details:          &playDetails{EventOwnerTeamID: 8, ShotType: "wrist", HomeScore: intPtr(1), AwayScore: intPtr(2)},
	}, torMtl)
	assert.Equal(t, feed.PlayEvent{
		Clock:       "14:21",
		Description: "GOAL (WRIST)",
		Score:       "1-2",
		TeamCode:    "MTL",
		Period:      2,
	}, goal)

	shot := mapPlay(playResponse{
		TypeDescKey: "shot-on-goal",
		Details:     &playDetails{EventOwnerTeamID: 10, HomeScore: intPtr(1), AwayScore: intPtr(2)},
	}, torMtl)
	assert.Empty(t, shot.Score, "score only accompanies goals")
	assert.Equal(t, "TOR", shot.TeamCode)

	unresolved := mapPlay(playResponse{TypeDescKey: "hit", Details: &playDetails{EventOwnerTeamID: 99}}, torMtl)
	assert.Equal(t, leagueMarker, unresolved.TeamCode)

	noDetails := mapPlay(playResponse{TypeDescKey: "period-start"}, store.TeamSides{})
	assert.Equal(t, leagueMarker, noDetails.TeamCode)
}
