package view

import (
	"time"

	"github.com/kridavyuha/forecast-dashboard/internals/forecast"
)

// NextMatches is how many metric cards the dashboard shows.
const NextMatches = 5

type Selection struct {
	Type   forecast.PlayerType `json:"type"`
	Player string              `json:"player"`
}

// Entry is one row of the player forecast table and one point of the trend.
type Entry struct {
	Match      string  `json:"match"`
	Value      float64 `json:"value"`
	FormStatus string  `json:"form_status"`
}

type Card struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

type PlayerView struct {
	Type       forecast.PlayerType `json:"type"`
	Player     string              `json:"player"`
	Players    []string            `json:"players"`
	ValueLabel string              `json:"value_label"`
	Unit       string              `json:"unit"`
	Entries    []Entry             `json:"entries"`
	Cards      []Card              `json:"cards"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type Distribution struct {
	Type   forecast.PlayerType `json:"type"`
	Title  string              `json:"title"`
	Counts []CategoryCount     `json:"counts"`
	Total  int                 `json:"total"`
}

type TableSummary struct {
	Type         forecast.PlayerType `json:"type"`
	Rows         int                 `json:"rows"`
	Players      int                 `json:"players"`
	Distribution Distribution        `json:"distribution"`
}

type Summary struct {
	DatasetID string         `json:"dataset_id"`
	LoadedAt  time.Time      `json:"loaded_at"`
	Tables    []TableSummary `json:"tables"`
}
