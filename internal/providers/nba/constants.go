package nba

const (
	providerName   = "nba"
	defaultBaseURL = "https://cdn.nba.com/static/json/liveData"

	scoreboardPath = "/scoreboard/todaysScoreboard_00.json"
	playByPlayPath = "/playbyplay/playbyplay_%s.json"

	endpointScoreboard = "scoreboard"
	endpointPlayByPlay = "playbyplay"

	// The CDN rejects requests that do not look like they come from nba.com.
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	browserReferer   = "https://www.nba.com/"

	// Used when an action carries no team, e.g. period start/end.
	leagueMarker = "NBA"

	// Used when an action has neither a description nor an action type.
	fallbackDescription = "EVENT"
)

// Upstream gameStatus codes.
const (
	statusCodeScheduled = 1
	statusCodeLive      = 2
	statusCodeFinal     = 3
)
