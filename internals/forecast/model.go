package forecast

import (
	"strconv"
	"time"
)

type PlayerType string

const (
	Batsman PlayerType = "batsman"
	Bowler  PlayerType = "bowler"
)

// Column names the input files must carry.
const (
	ColBatsman           = "batsman"
	ColBowler            = "bowler"
	ColForecastedRuns    = "forecasted_runs"
	ColForecastedWickets = "forecasted_wickets"
	ColFormStatus        = "form_status"
)

// PlayerTypes lists the selectable types in toggle order.
var PlayerTypes = []PlayerType{Batsman, Bowler}

// ParsePlayerType accepts the lower-case type name as well as the display
// label ("Batsman", "Bowler").
func ParsePlayerType(s string) (PlayerType, error) {
	switch s {
	case "batsman", "Batsman":
		return Batsman, nil
	case "bowler", "Bowler":
		return Bowler, nil
	}
	return "", &UnknownPlayerTypeError{Value: s}
}

// Label is the toggle label shown to the user.
func (t PlayerType) Label() string {
	switch t {
	case Bowler:
		return "Bowler"
	default:
		return "Batsman"
	}
}

// Row is a single forecast for one player and one upcoming match.
type Row interface {
	Player() string
	Forecast() float64
	Form() string
	// Cell returns the textual value of the named column.
	Cell(column string) string
}

type BatsmanRow struct {
	Batsman        string            `json:"batsman"`
	ForecastedRuns float64           `json:"forecasted_runs"`
	FormStatus     string            `json:"form_status"`
	Extra          map[string]string `json:"extra,omitempty"`
}

func (r BatsmanRow) Player() string    { return r.Batsman }
func (r BatsmanRow) Forecast() float64 { return r.ForecastedRuns }
func (r BatsmanRow) Form() string      { return r.FormStatus }

func (r BatsmanRow) Cell(column string) string {
	switch column {
	case ColBatsman:
		return r.Batsman
	case ColForecastedRuns:
		return formatFloat(r.ForecastedRuns)
	case ColFormStatus:
		return r.FormStatus
	}
	return r.Extra[column]
}

type BowlerRow struct {
	Bowler            string            `json:"bowler"`
	ForecastedWickets float64           `json:"forecasted_wickets"`
	FormStatus        string            `json:"form_status"`
	Extra             map[string]string `json:"extra,omitempty"`
}

func (r BowlerRow) Player() string    { return r.Bowler }
func (r BowlerRow) Forecast() float64 { return r.ForecastedWickets }
func (r BowlerRow) Form() string      { return r.FormStatus }

func (r BowlerRow) Cell(column string) string {
	switch column {
	case ColBowler:
		return r.Bowler
	case ColForecastedWickets:
		return formatFloat(r.ForecastedWickets)
	case ColFormStatus:
		return r.FormStatus
	}
	return r.Extra[column]
}

// Table holds the rows of one input file in file order. Columns keeps the
// header as read so that export reproduces it.
type Table[R Row] struct {
	Type    PlayerType `json:"type"`
	Columns []string   `json:"columns"`
	Rows    []R        `json:"rows"`
}

// Records returns the header followed by one record per row.
func (t Table[R]) Records() [][]string {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, append([]string(nil), t.Columns...))
	for _, row := range t.Rows {
		rec := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			rec[i] = row.Cell(col)
		}
		records = append(records, rec)
	}
	return records
}

// Dataset is the pair of forecast tables loaded at startup. It is never
// modified after Load returns.
type Dataset struct {
	ID         string            `json:"id"`
	LoadedAt   time.Time         `json:"loaded_at"`
	BatsmanSrc string            `json:"batsman_src"`
	BowlerSrc  string            `json:"bowler_src"`
	Batsmen    Table[BatsmanRow] `json:"batsmen"`
	Bowlers    Table[BowlerRow]  `json:"bowlers"`
}

// Players lists the players of the given type in first-appearance order.
func (ds *Dataset) Players(t PlayerType) ([]string, error) {
	switch t {
	case Batsman:
		return ListPlayers(ds.Batsmen.Rows), nil
	case Bowler:
		return ListPlayers(ds.Bowlers.Rows), nil
	}
	return nil, &UnknownPlayerTypeError{Value: string(t)}
}

// TypeInfo describes how a player type maps onto its input file and how it is
// presented.
type TypeInfo struct {
	Type        PlayerType
	NameColumn  string
	ValueColumn string
	ValueLabel  string
	Unit        string
	Filename    string
}

var typeInfos = map[PlayerType]TypeInfo{
	Batsman: {
		Type:        Batsman,
		NameColumn:  ColBatsman,
		ValueColumn: ColForecastedRuns,
		ValueLabel:  "Forecasted Runs",
		Unit:        "Runs",
		Filename:    "batsman_forecast.csv",
	},
	Bowler: {
		Type:        Bowler,
		NameColumn:  ColBowler,
		ValueColumn: ColForecastedWickets,
		ValueLabel:  "Forecasted Wickets",
		Unit:        "Wickets",
		Filename:    "bowler_forecast.csv",
	},
}

func InfoFor(t PlayerType) (TypeInfo, error) {
	s, ok := typeInfos[t]
	if !ok {
		return TypeInfo{}, &UnknownPlayerTypeError{Value: string(t)}
	}
	return s, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
