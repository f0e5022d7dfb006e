package forecast

import (
	"os"
	"time"

	"github.com/google/uuid"
)

// Load reads both forecast files. Both paths are checked before either file
// is parsed, and nothing is returned unless both tables parse cleanly.
func Load(batsmanPath, bowlerPath string) (*Dataset, error) {
	for _, p := range []string{batsmanPath, bowlerPath} {
		if _, err := os.Stat(p); err != nil {
			return nil, &DataNotFoundError{Path: p, Err: err}
		}
	}

	batsmen, err := readTable(batsmanPath, ParseBatsmen)
	if err != nil {
		return nil, err
	}
	bowlers, err := readTable(bowlerPath, ParseBowlers)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		ID:         uuid.NewString(),
		LoadedAt:   time.Now(),
		BatsmanSrc: batsmanPath,
		BowlerSrc:  bowlerPath,
		Batsmen:    batsmen,
		Bowlers:    bowlers,
	}, nil
}

// ListPlayers returns each distinct player once, in order of first appearance.
func ListPlayers[R Row](rows []R) []string {
	seen := make(map[string]struct{})
	players := make([]string, 0)
	for _, row := range rows {
		name := row.Player()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		players = append(players, name)
	}
	return players
}

// FilterByPlayer returns the rows belonging to name, keeping their relative
// order. No match is not an error.
func FilterByPlayer[R Row](rows []R, name string) []R {
	out := make([]R, 0)
	for _, row := range rows {
		if row.Player() == name {
			out = append(out, row)
		}
	}
	return out
}

// TailN returns the last min(n, len(rows)) elements in their original order.
func TailN[T any](rows []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if n > len(rows) {
		n = len(rows)
	}
	out := make([]T, n)
	copy(out, rows[len(rows)-n:])
	return out
}

// CountByCategory counts rows per form status. Categories that never occur
// are absent from the result.
func CountByCategory[R Row](rows []R) map[string]int {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[row.Form()]++
	}
	return counts
}

// Categories returns the distinct form statuses in order of first appearance.
func Categories[R Row](rows []R) []string {
	seen := make(map[string]struct{})
	cats := make([]string, 0)
	for _, row := range rows {
		f := row.Form()
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		cats = append(cats, f)
	}
	return cats
}

// Values extracts the forecast column.
func Values[R Row](rows []R) []float64 {
	vals := make([]float64, len(rows))
	for i, row := range rows {
		vals[i] = row.Forecast()
	}
	return vals
}
