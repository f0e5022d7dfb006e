package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/kridavyuha/forecast-dashboard/internals/forecast"
	"github.com/kridavyuha/forecast-dashboard/internals/view"
)

func TestDashboardRender(t *testing.T) {
	data := DashboardPageData{
		DatasetID: "ds",
		Types: []TypeOption{
			{Type: forecast.Batsman, Label: "Batsman", Selected: true},
			{Type: forecast.Bowler, Label: "Bowler"},
		},
		View: view.PlayerView{
			Type:       forecast.Batsman,
			Player:     "Kohli",
			Players:    []string{"Kohli", "<script>"},
			ValueLabel: "Forecasted Runs",
			Unit:       "Runs",
			Entries:    []view.Entry{{Match: "M1", Value: 45.2, FormStatus: "Good"}},
			Cards:      []view.Card{{Label: "Match 1", Value: 45.2, Display: "45.2 Runs"}},
		},
		Distributions: []view.Distribution{{Type: forecast.Batsman, Title: "Batsman Form Distribution"}},
		TrendURL:      "/charts/trend.png?type=batsman&player=Kohli",
		ChartFormat:   "png",
	}

	var buf bytes.Buffer
	if err := Dashboard(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"Kohli — Forecast Overview",
		"Forecasted Runs",
		"45.2 Runs",
		"Match 1",
		"/charts/distribution/batsman.png",
		"/download/batsman.csv",
		"/download/bowler.csv",
		`value="Kohli" selected`,
		"&amp;player=Kohli",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
	if strings.Contains(html, "<script>") {
		t.Error("player names must be escaped")
	}
}

func TestDataNotFoundRender(t *testing.T) {
	var buf bytes.Buffer
	err := DataNotFound(DataNotFoundPageData{
		Paths: []string{"outputs/batsman_forecast_form.csv", "outputs/bowler_forecast_form.csv"},
	}).Render(context.Background(), &buf)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "Forecast files not found") || !strings.Contains(html, "outputs/bowler_forecast_form.csv") {
		t.Errorf("unexpected page: %s", html)
	}
	if strings.Contains(html, "Forecast Overview") {
		t.Error("no dashboard content should render when data is missing")
	}
}
