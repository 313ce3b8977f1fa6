package nfl

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	ShortName string         `json:"shortName"`
	Status    statusResponse `json:"status"`
}

type statusResponse struct {
	Type statusType `json:"type"`
}

type statusType struct {
	State     string `json:"state"`
	Completed bool   `json:"completed"`
}

type summaryResponse struct {
	Drives *drivesResponse `json:"drives"`
}

type drivesResponse struct {
	Current  *driveResponse  `json:"current"`
	Previous []driveResponse `json:"previous"`
}

type driveResponse struct {
	ID    string         `json:"id"`
	Team  teamResponse   `json:"team"`
	Plays []playResponse `json:"plays"`
}

type teamResponse struct {
	Abbreviation string `json:"abbreviation"`
}

type playResponse struct {
	ID        string         `json:"id"`
	Text      string         `json:"text"`
	Type      playType       `json:"type"`
	Clock     clockResponse  `json:"clock"`
	Period    periodResponse `json:"period"`
	HomeScore *int           `json:"homeScore"`
	AwayScore *int           `json:"awayScore"`
}

type playType struct {
	Text string `json:"text"`
}

type clockResponse struct {
	DisplayValue string `json:"displayValue"`
}

type periodResponse struct {
	Number int `json:"number"`
}
