package forecast

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestParseBatsmenExtraColumns(t *testing.T) {
	in := "match_no,batsman,forecasted_runs,form_status,opponent\n1,Kohli,45.2,Good,AUS\n2,Kohli,30.1,Good,ENG\n"
	table, err := ParseBatsmen(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseBatsmen failed: %v", err)
	}

	wantCols := []string{"match_no", "batsman", "forecasted_runs", "form_status", "opponent"}
	if !reflect.DeepEqual(table.Columns, wantCols) {
		t.Errorf("Columns = %v, want %v", table.Columns, wantCols)
	}
	if table.Type != Batsman {
		t.Errorf("Type = %q, want batsman", table.Type)
	}

	first := table.Rows[0]
	if first.Batsman != "Kohli" || first.ForecastedRuns != 45.2 || first.FormStatus != "Good" {
		t.Errorf("unexpected first row: %+v", first)
	}
	if first.Extra["opponent"] != "AUS" || first.Extra["match_no"] != "1" {
		t.Errorf("extra columns not kept: %v", first.Extra)
	}
}

func TestParseBOMAndPaddedHeader(t *testing.T) {
	in := "\ufeffbowler , forecasted_wickets,form_status\nBumrah,2,Good\n"
	table, err := ParseBowlers(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseBowlers failed: %v", err)
	}
	if len(table.Rows) != 1 || table.Rows[0].Bowler != "Bumrah" {
		t.Errorf("unexpected rows: %+v", table.Rows)
	}
	if table.Columns[0] != "bowler" {
		t.Errorf("Columns[0] = %q, want bowler", table.Columns[0])
	}
}

func TestParseHeaderOnly(t *testing.T) {
	table, err := ParseBowlers(strings.NewReader("bowler,forecasted_wickets,form_status\n"))
	if err != nil {
		t.Fatalf("ParseBowlers failed: %v", err)
	}
	if len(table.Rows) != 0 {
		t.Errorf("expected no rows, got %d", len(table.Rows))
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"batsman,forecasted_runs,form_status\nKohli,45.2,Good\nRohit,0.1,Average\nKohli,1e-7,\"Poor, slipping\"\n",
		"form_status,batsman,forecasted_runs,venue\nGood,Gill,33.333333333333336,Wankhede\nPoor,Pant,-2,\"Eden \"\"Gardens\"\"\"\n",
		"batsman,forecasted_runs,form_status\n",
	}

	for _, in := range inputs {
		table, err := ParseBatsmen(strings.NewReader(in))
		if err != nil {
			t.Fatalf("ParseBatsmen(%q) failed: %v", in, err)
		}

		var buf bytes.Buffer
		if err := WriteCSV(&buf, table); err != nil {
			t.Fatalf("WriteCSV failed: %v", err)
		}

		again, err := ParseBatsmen(&buf)
		if err != nil {
			t.Fatalf("re-parse failed: %v", err)
		}
		if !reflect.DeepEqual(table, again) {
			t.Errorf("round trip mismatch:\n got %+v\nwant %+v", again, table)
		}
	}
}

func TestRecords(t *testing.T) {
	table := Table[BowlerRow]{
		Type:    Bowler,
		Columns: []string{"bowler", "forecasted_wickets", "form_status"},
		Rows: []BowlerRow{
			{Bowler: "Bumrah", ForecastedWickets: 2.5, FormStatus: "Good"},
			{Bowler: "Shami", ForecastedWickets: 1, FormStatus: "Poor"},
		},
	}
	got := table.Records()
	want := [][]string{
		{"bowler", "forecasted_wickets", "form_status"},
		{"Bumrah", "2.5", "Good"},
		{"Shami", "1", "Poor"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Records = %v, want %v", got, want)
	}
}
