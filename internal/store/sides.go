// Package store holds the per-game NHL team side lookup table.
package store

import (
	"context"
	"time"
)

// DefaultTTL bounds how long a game's sides are kept; longer than any game's polling session.
const DefaultTTL = 6 * time.Hour

// TeamSides maps a game's home and away team ids to their abbreviations.
type TeamSides struct {
	HomeID     int    `json:"homeId"`
	HomeAbbrev string `json:"homeAbbrev"`
	AwayID     int    `json:"awayId"`
	AwayAbbrev string `json:"awayAbbrev"`
}

// Abbrev resolves a team id to its abbreviation.
func (s TeamSides) Abbrev(teamID int) (string, bool) {
	switch {
	case teamID == 0:
		return "", false
	case teamID == s.HomeID:
		return s.HomeAbbrev, s.HomeAbbrev != ""
	case teamID == s.AwayID:
		return s.AwayAbbrev, s.AwayAbbrev != ""
	default:
		return "", false
	}
}

// Complete reports whether both sides carry an id and abbreviation.
func (s TeamSides) Complete() bool {
	return s.HomeID != 0 && s.AwayID != 0 && s.HomeAbbrev != "" && s.AwayAbbrev != ""
}

// SideStore caches TeamSides per game id.
type SideStore interface {
	GetSides(ctx context.Context, gameID string) (TeamSides, bool, error)
	SetSides(ctx context.Context, gameID string, sides TeamSides) error
}

var (
	_ SideStore = (*MemoryStore)(nil)
	_ SideStore = (*RedisStore)(nil)
)
