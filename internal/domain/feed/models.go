package feed

import (
	"strconv"
	"strings"
)

// Sport identifies one of the supported leagues.
type Sport string

const (
	SportNBA Sport = "nba"
	SportNFL Sport = "nfl"
	SportNHL Sport = "nhl"
)

// ParseSport normalizes a raw sport key. The second value is false for unsupported keys.
func ParseSport(raw string) (Sport, bool) {
	switch s := Sport(strings.ToLower(strings.TrimSpace(raw))); s {
	case SportNBA, SportNFL, SportNHL:
		return s, true
	default:
		return "", false
	}
}

// GameStatus is the shared lifecycle state every provider vocabulary maps onto.
type GameStatus string

const (
	StatusScheduled GameStatus = "SCHEDULED"
	StatusLive      GameStatus = "LIVE"
	StatusFinal     GameStatus = "FINAL"
)

// Valid reports whether the status is one of the three shared values.
func (s GameStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusLive, StatusFinal:
		return true
	default:
		return false
	}
}

// Game is one entry of the daily game list.
type Game struct {
	GameID  string     `json:"gameId"`
	Matchup string     `json:"matchup"`
	Status  GameStatus `json:"status"`
}

// PlayEvent is a single normalized play-by-play entry.
// Score is omitted when the provider has no running score for the play.
type PlayEvent struct {
	Clock       string `json:"clock"`
	Description string `json:"description"`
	Score       string `json:"score,omitempty"`
	TeamCode    string `json:"teamCode"`
	Period      int    `json:"period,omitempty"`
}

// PlayFeedResult is the payload served for a game's recent plays.
type PlayFeedResult struct {
	Active  bool        `json:"active"`
	Message string      `json:"message,omitempty"`
	Plays   []PlayEvent `json:"plays"`
}

// NewActiveResult wraps plays into an active result.
func NewActiveResult(plays []PlayEvent) PlayFeedResult {
	if plays == nil {
		plays = []PlayEvent{}
	}
	return PlayFeedResult{Active: true, Plays: plays}
}

// NewInactiveResult builds an inactive result; plays is always empty.
func NewInactiveResult(message string) PlayFeedResult {
	return PlayFeedResult{Active: false, Message: message, Plays: []PlayEvent{}}
}

// FormatMatchup renders "AWAY @ HOME".
func FormatMatchup(away, home string) string {
	return away + " @ " + home
}

// FormatScore renders "HOME-AWAY".
func FormatScore(home, away int) string {
	return strconv.Itoa(home) + "-" + strconv.Itoa(away)
}
