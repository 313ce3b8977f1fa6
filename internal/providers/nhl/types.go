package nhl

type scoresResponse struct {
	CurrentDate string         `json:"currentDate"`
	Games       []gameResponse `json:"games"`
}

type gameResponse struct {
	ID        int64        `json:"id"`
	GameState string       `json:"gameState"`
	HomeTeam  teamResponse `json:"homeTeam"`
	AwayTeam  teamResponse `json:"awayTeam"`
}

type teamResponse struct {
	ID     int    `json:"id"`
	Abbrev string `json:"abbrev"`
}

// landingResponse is the subset of the gamecenter landing document used for side lookup.
type landingResponse struct {
	ID       int64        `json:"id"`
	HomeTeam teamResponse `json:"homeTeam"`
	AwayTeam teamResponse `json:"awayTeam"`
}

type playByPlayResponse struct {
	ID        int64          `json:"id"`
	GameState string         `json:"gameState"`
	HomeTeam  teamResponse   `json:"homeTeam"`
	AwayTeam  teamResponse   `json:"awayTeam"`
	Plays     []playResponse `json:"plays"`
}

type playResponse struct {
	EventID          int              `json:"eventId"`
	PeriodDescriptor periodDescriptor `json:"periodDescriptor"`
	TimeInPeriod     string           `json:"timeInPeriod"`
	TimeRemaining    string           `json:"timeRemaining"`
	TypeDescKey      string           `json:"typeDescKey"`
	Details          *playDetails     `json:"details"`
}

type periodDescriptor struct {
	Number     int    `json:"number"`
	PeriodType string `json:"periodType"`
}

type playDetails struct {
	EventOwnerTeamID int    `json:"eventOwnerTeamId"`
	ShotType         string `json:"shotType"`
	DescKey          string `json:"descKey"`
	Reason           string `json:"reason"`
	Duration         int    `json:"duration"`
	HomeScore        *int   `json:"homeScore"`
	AwayScore        *int   `json:"awayScore"`
}
