package nhl

const (
	providerName   = "nhl"
	defaultBaseURL = "https://api-web.nhle.com/v1"

	scoresPath     = "/score/now"
	playByPlayPath = "/gamecenter/%s/play-by-play"
	landingPath    = "/gamecenter/%s/landing"

	endpointScores     = "score"
	endpointPlayByPlay = "play-by-play"
	endpointLanding    = "landing"

	leagueMarker = "NHL"
	typeGoal     = "goal"
)
