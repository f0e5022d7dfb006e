package export

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/kridavyuha/forecast-dashboard/internals/forecast"

	"github.com/xuri/excelize/v2"
)

func testDataset() *forecast.Dataset {
	return &forecast.Dataset{
		ID: "ds",
		Batsmen: forecast.Table[forecast.BatsmanRow]{
			Type:    forecast.Batsman,
			Columns: []string{"batsman", "forecasted_runs", "form_status"},
			Rows: []forecast.BatsmanRow{
				{Batsman: "Kohli", ForecastedRuns: 45.2, FormStatus: "Good"},
				{Batsman: "Rohit", ForecastedRuns: 30, FormStatus: "Average"},
			},
		},
		Bowlers: forecast.Table[forecast.BowlerRow]{
			Type:    forecast.Bowler,
			Columns: []string{"bowler", "forecasted_wickets", "form_status", "venue"},
			Rows: []forecast.BowlerRow{
				{Bowler: "Bumrah", ForecastedWickets: 2.5, FormStatus: "Good", Extra: map[string]string{"venue": "Chepauk"}},
			},
		},
	}
}

func TestTableCSVRoundTrip(t *testing.T) {
	ds := testDataset()

	var buf bytes.Buffer
	if err := TableCSV(&buf, ds, forecast.Bowler); err != nil {
		t.Fatalf("TableCSV failed: %v", err)
	}
	if got, want := buf.String(), "bowler,forecasted_wickets,form_status,venue\nBumrah,2.5,Good,Chepauk\n"; got != want {
		t.Errorf("CSV = %q, want %q", got, want)
	}

	table, err := forecast.ParseBowlers(&buf)
	if err != nil {
		t.Fatalf("ParseBowlers failed: %v", err)
	}
	if !reflect.DeepEqual(table, ds.Bowlers) {
		t.Errorf("round trip mismatch: %+v", table)
	}

	if err := TableCSV(&buf, ds, "umpire"); !errors.Is(err, forecast.ErrUnknownPlayerType) {
		t.Errorf("expected ErrUnknownPlayerType, got %v", err)
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, testDataset()); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()

	if got, want := f.GetSheetList(), []string{"Batsmen", "Bowlers"}; !reflect.DeepEqual(got, want) {
		t.Errorf("sheets = %v, want %v", got, want)
	}

	rows, err := f.GetRows("Batsmen")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	want := [][]string{
		{"batsman", "forecasted_runs", "form_status"},
		{"Kohli", "45.2", "Good"},
		{"Rohit", "30", "Average"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("Batsmen rows = %v, want %v", rows, want)
	}

	cellType, err := f.GetCellType("Batsmen", "B2")
	if err != nil {
		t.Fatalf("GetCellType failed: %v", err)
	}
	if cellType != excelize.CellTypeNumber && cellType != excelize.CellTypeUnset {
		t.Errorf("forecast cell type = %v, want number", cellType)
	}

	bowlers, _ := f.GetRows("Bowlers")
	if len(bowlers) != 2 || bowlers[1][3] != "Chepauk" {
		t.Errorf("Bowlers rows = %v", bowlers)
	}
}
