package leaderboard

type score struct {
	Rank       int     `json:"rank"`
	Player     string  `json:"player"`
	Matches    int     `json:"matches"`
	Total      float64 `json:"total"`
	Average    float64 `json:"average"`
	LatestForm string  `json:"latest_form"`
}
