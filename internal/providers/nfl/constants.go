package nfl

const (
	providerName   = "nfl"
	defaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports"

	scoreboardPath = "/football/nfl/scoreboard"
	summaryPath    = "/football/nfl/summary"

	endpointScoreboard = "scoreboard"
	endpointSummary    = "summary"

	leagueMarker = "NFL"
)

// ESPN status.type.state values.
const (
	statePre  = "pre"
	stateIn   = "in"
	statePost = "post"
)
