package leaderboard

import (
	"errors"
	"testing"

	"github.com/kridavyuha/forecast-dashboard/internals/forecast"
)

func testDataset() *forecast.Dataset {
	return &forecast.Dataset{
		Batsmen: forecast.Table[forecast.BatsmanRow]{
			Type: forecast.Batsman,
			Rows: []forecast.BatsmanRow{
				{Batsman: "Kohli", ForecastedRuns: 40, FormStatus: "Good"},
				{Batsman: "Rohit", ForecastedRuns: 55, FormStatus: "Good"},
				{Batsman: "Kohli", ForecastedRuns: 60, FormStatus: "Average"},
				{Batsman: "Gill", ForecastedRuns: 50, FormStatus: "Poor"},
			},
		},
		Bowlers: forecast.Table[forecast.BowlerRow]{Type: forecast.Bowler},
	}
}

func TestGetLeaderboard(t *testing.T) {
	scores, err := New(testDataset()).GetLeaderboard(forecast.Batsman, 0)
	if err != nil {
		t.Fatalf("GetLeaderboard failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 players, got %d", len(scores))
	}

	want := []struct {
		player  string
		average float64
	}{{"Rohit", 55}, {"Kohli", 50}, {"Gill", 50}}
	for i, w := range want {
		if scores[i].Player != w.player || scores[i].Average != w.average || scores[i].Rank != i+1 {
			t.Errorf("rank %d = %+v, want %s avg %v", i+1, scores[i], w.player, w.average)
		}
	}

	kohli := scores[1]
	if kohli.Matches != 2 || kohli.Total != 100 || kohli.LatestForm != "Average" {
		t.Errorf("Kohli = %+v", kohli)
	}
}

func TestGetLeaderboardLimit(t *testing.T) {
	scores, err := New(testDataset()).GetLeaderboard(forecast.Batsman, 1)
	if err != nil {
		t.Fatalf("GetLeaderboard failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Player != "Rohit" {
		t.Errorf("scores = %+v", scores)
	}
}

func TestGetLeaderboardEmptyAndUnknown(t *testing.T) {
	lb := New(testDataset())
	scores, err := lb.GetLeaderboard(forecast.Bowler, 5)
	if err != nil {
		t.Fatalf("GetLeaderboard failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("expected no bowlers, got %+v", scores)
	}
	if _, err := lb.GetLeaderboard("umpire", 0); !errors.Is(err, forecast.ErrUnknownPlayerType) {
		t.Errorf("expected ErrUnknownPlayerType, got %v", err)
	}
}
