package rank

import (
	"sort"

	"github.com/shopspring/decimal"

	"marketdash/internal/models"
)

// Activity classifies whether a strategy filled anything in the last 24h.
type Activity string

const (
	ActivityActive Activity = "active"
	ActivityIdle   Activity = "idle"
)

// TopCount is how many strategies the landing-page summary shows.
const TopCount = 2

// RankedStrategy is a strategy summary with its leaderboard placement.
type RankedStrategy struct {
	models.StrategySummary
	Rank     int      `json:"rank"`
	Activity Activity `json:"activity"`
}

// Rank orders strategies by total_pnl descending. The upstream does not
// define a tie order, so ties break by name ascending to keep repeated
// polls rendering a stable leaderboard. The input is not modified.
func Rank(in []models.StrategySummary) []RankedStrategy {
	sorted := make([]models.StrategySummary, len(in))
	copy(sorted, in)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TotalPnL != sorted[j].TotalPnL {
			return sorted[i].TotalPnL > sorted[j].TotalPnL
		}
		return sorted[i].Name < sorted[j].Name
	})

	out := make([]RankedStrategy, len(sorted))
	for i, s := range sorted {
		out[i] = RankedStrategy{
			StrategySummary: s,
			Rank:            i + 1,
			Activity:        classifyActivity(s),
		}
	}
	return out
}

// Top returns the first n entries of an already ranked list.
func Top(ranked []RankedStrategy, n int) []RankedStrategy {
	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

func classifyActivity(s models.StrategySummary) Activity {
	if s.Fills24h > 0 {
		return ActivityActive
	}
	return ActivityIdle
}

// Totals aggregates PnL across the board. Sums run through decimal so a
// long book of small fills doesn't accumulate float drift; total_pnl is
// summed as supplied, never recomputed from realized + unrealized.
type Totals struct {
	Realized   float64 `json:"realized_pnl"`
	Unrealized float64 `json:"unrealized_pnl"`
	Total      float64 `json:"total_pnl"`
	Fills24h   int64   `json:"fills_24h"`
}

// SumTotals computes board-wide PnL totals for a ranked list.
func SumTotals(ranked []RankedStrategy) Totals {
	realized := decimal.Zero
	unrealized := decimal.Zero
	total := decimal.Zero
	var fills int64
	for _, s := range ranked {
		realized = realized.Add(decimal.NewFromFloat(s.RealizedPnL))
		unrealized = unrealized.Add(decimal.NewFromFloat(s.UnrealizedPnL))
		total = total.Add(decimal.NewFromFloat(s.TotalPnL))
		fills += s.Fills24h
	}
	return Totals{
		Realized:   realized.InexactFloat64(),
		Unrealized: unrealized.InexactFloat64(),
		Total:      total.InexactFloat64(),
		Fills24h:   fills,
	}
}
