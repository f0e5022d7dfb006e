package leaderboard

import (
	"sort"

	"github.com/kridavyuha/forecast-dashboard/internals/forecast"
)

type Leaderboard struct {
	Data *forecast.Dataset
}

func New(ds *forecast.Dataset) *Leaderboard {
	return &Leaderboard{Data: ds}
}

// GetLeaderboard ranks the players of one type by their average forecast.
// Ties keep first-appearance order. limit <= 0 returns every player.
func (l *Leaderboard) GetLeaderboard(t forecast.PlayerType, limit int) ([]score, error) {
	var scores []score
	switch t {
	case forecast.Batsman:
		scores = scoresFor(l.Data.Batsmen.Rows)
	case forecast.Bowler:
		scores = scoresFor(l.Data.Bowlers.Rows)
	default:
		return nil, &forecast.UnknownPlayerTypeError{Value: string(t)}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Average > scores[j].Average
	})
	for i := range scores {
		scores[i].Rank = i + 1
	}

	if limit > 0 && limit < len(scores) {
		scores = scores[:limit]
	}
	return scores, nil
}

func scoresFor[R forecast.Row](rows []R) []score {
	players := forecast.ListPlayers(rows)
	scores := make([]score, 0, len(players))
	for _, player := range players {
		matched := forecast.FilterByPlayer(rows, player)
		s := score{Player: player, Matches: len(matched)}
		for _, row := range matched {
			s.Total += row.Forecast()
		}
		s.Average = s.Total / float64(len(matched))
		s.LatestForm = matched[len(matched)-1].Form()
		scores = append(scores, s)
	}
	return scores
}
