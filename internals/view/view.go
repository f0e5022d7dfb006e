// Package view turns the loaded forecast tables into what the dashboard
// renders: the selected player's forecast table and trend, the next-match
// cards and the whole-table form distributions.
package view

import (
	"fmt"

	"github.com/kridavyuha/forecast-dashboard/internals/forecast"
)

// Resolve validates the player type and fills in a default player. An empty
// player name selects the first player listed for the type. A name that is
// not listed is kept as is and yields an empty view.
func Resolve(ds *forecast.Dataset, sel Selection) (Selection, error) {
	if sel.Type == "" {
		sel.Type = forecast.Batsman
	}
	players, err := ds.Players(sel.Type)
	if err != nil {
		return Selection{}, err
	}
	if sel.Player == "" && len(players) > 0 {
		sel.Player = players[0]
	}
	return sel, nil
}

// Build returns the view for the selected player.
func Build(ds *forecast.Dataset, sel Selection) (PlayerView, error) {
	sel, err := Resolve(ds, sel)
	if err != nil {
		return PlayerView{}, err
	}
	info, err := forecast.InfoFor(sel.Type)
	if err != nil {
		return PlayerView{}, err
	}

	switch sel.Type {
	case forecast.Bowler:
		return buildFor(ds.Bowlers.Rows, info, sel.Player), nil
	default:
		return buildFor(ds.Batsmen.Rows, info, sel.Player), nil
	}
}

func buildFor[R forecast.Row](rows []R, info forecast.TypeInfo, player string) PlayerView {
	matched := forecast.FilterByPlayer(rows, player)

	v := PlayerView{
		Type:       info.Type,
		Player:     player,
		Players:    forecast.ListPlayers(rows),
		ValueLabel: info.ValueLabel,
		Unit:       info.Unit,
		Entries:    make([]Entry, len(matched)),
	}
	for i, row := range matched {
		v.Entries[i] = Entry{
			Match:      fmt.Sprintf("M%d", i+1),
			Value:      row.Forecast(),
			FormStatus: row.Form(),
		}
	}
	v.Cards = cards(forecast.Values(matched), info.Unit)
	return v
}

// cards labels the last NextMatches forecasts with their match number within
// the player's full sequence.
func cards(values []float64, unit string) []Card {
	tail := forecast.TailN(values, NextMatches)
	offset := len(values) - len(tail)
	out := make([]Card, len(tail))
	for i, val := range tail {
		out[i] = Card{
			Label:   fmt.Sprintf("Match %d", offset+i+1),
			Value:   val,
			Display: fmt.Sprintf("%.1f %s", val, unit),
		}
	}
	return out
}

// Distributions returns the form distribution of every table, batsmen first.
func Distributions(ds *forecast.Dataset) []Distribution {
	return []Distribution{
		distributionFor(ds.Batsmen),
		distributionFor(ds.Bowlers),
	}
}

// DistributionFor returns the form distribution of one table.
func DistributionFor(ds *forecast.Dataset, t forecast.PlayerType) (Distribution, error) {
	switch t {
	case forecast.Batsman:
		return distributionFor(ds.Batsmen), nil
	case forecast.Bowler:
		return distributionFor(ds.Bowlers), nil
	}
	return Distribution{}, &forecast.UnknownPlayerTypeError{Value: string(t)}
}

func distributionFor[R forecast.Row](t forecast.Table[R]) Distribution {
	counts := forecast.CountByCategory(t.Rows)
	d := Distribution{
		Type:   t.Type,
		Title:  fmt.Sprintf("%s Form Distribution", t.Type.Label()),
		Counts: make([]CategoryCount, 0, len(counts)),
	}
	for _, cat := range forecast.Categories(t.Rows) {
		d.Counts = append(d.Counts, CategoryCount{Category: cat, Count: counts[cat]})
		d.Total += counts[cat]
	}
	return d
}

func Summarize(ds *forecast.Dataset) Summary {
	dists := Distributions(ds)
	return Summary{
		DatasetID: ds.ID,
		LoadedAt:  ds.LoadedAt,
		Tables: []TableSummary{
			{
				Type:         forecast.Batsman,
				Rows:         len(ds.Batsmen.Rows),
				Players:      len(forecast.ListPlayers(ds.Batsmen.Rows)),
				Distribution: dists[0],
			},
			{
				Type:         forecast.Bowler,
				Rows:         len(ds.Bowlers.Rows),
				Players:      len(forecast.ListPlayers(ds.Bowlers.Rows)),
				Distribution: dists[1],
			},
		},
	}
}
