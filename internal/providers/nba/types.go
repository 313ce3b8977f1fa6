package nba

type scoreboardResponse struct {
	Scoreboard *scoreboardBody `json:"scoreboard"`
}

type scoreboardBody struct {
	GameDate string           `json:"gameDate"`
	Games    []scoreboardGame `json:"games"`
}

type scoreboardGame struct {
	GameID         string       `json:"gameId"`
	GameStatus     int          `json:"gameStatus"`
	GameStatusText string       `json:"gameStatusText"`
	HomeTeam       teamResponse `json:"homeTeam"`
	AwayTeam       teamResponse `json:"awayTeam"`
}

type teamResponse struct {
	TeamID      int    `json:"teamId"`
	TeamTricode string `json:"teamTricode"`
	Score       int    `json:"score"`
}

type playByPlayResponse struct {
	Game *playByPlayGame `json:"game"`
}

type playByPlayGame struct {
	GameID  string           `json:"gameId"`
	Actions []actionResponse `json:"actions"`
}

type actionResponse struct {
	ActionNumber int    `json:"actionNumber"`
	Clock        string `json:"clock"`
	Period       int    `json:"period"`
	TeamTricode  string `json:"teamTricode"`
	ActionType   string `json:"actionType"`
	Description  string `json:"description"`
	ScoreHome    string `json:"scoreHome"`
	ScoreAway    string `json:"scoreAway"`
}
