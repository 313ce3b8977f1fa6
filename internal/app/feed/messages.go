package feed

import (
	domain "github.com/preston-bernstein/sports-feed-service/internal/domain/feed"
	"github.com/preston-bernstein/sports-feed-service/internal/providers"
)

// MessageOffline is shown when the upstream could not be reached or returned garbage.
const MessageOffline = "FEED OFFLINE"

var waitingMessages = map[domain.Sport]string{
	domain.SportNBA: "PRE-GAME",
	domain.SportNFL: "WAITING FOR KICKOFF",
	domain.SportNHL: "WAITING FOR PUCK DROP",
}

// WaitingMessage is the placeholder for a game with no plays yet.
func WaitingMessage(sport domain.Sport) string {
	if msg, ok := waitingMessages[sport]; ok {
		return msg
	}
	return "NO PLAYS YET"
}

// fallbackMessage picks the placeholder for a failed play fetch.
// A missing document means the game has not started; anything else is an outage.
func fallbackMessage(sport domain.Sport, kind providers.ErrorKind) string {
	if kind == providers.KindNotFound {
		return WaitingMessage(sport)
	}
	return MessageOffline
}
