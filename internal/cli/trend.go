package cli

import (
	"math/rand"
	"time"

	"github.com/waterwise/waterwise/internal/config"
)

// trendDays is the number of entries in the weekly trend.
const trendDays = 7

// TrendPoint is one day in the weekly usage trend.
type TrendPoint struct {
	// Label is the weekday abbreviation.
	Label string `json:"label"`

	// Liters is the day's usage.
	Liters int `json:"liters"`

	// Simulated is true when the value was generated rather than
	// recorded in the journal.
	Simulated bool `json:"simulated"`
}

// WeeklyTrend builds a seven-day usage trend ending today.
//
// Journal entries, newest first, fill the trailing days; earlier days
// are simulated as 80-120% of the current daily total. The final point
// is always the actual daily total. The random source is injected so
// output is reproducible.
func WeeklyTrend(rng *rand.Rand, daily int, entries []config.JournalEntry, now time.Time) []TrendPoint {
	points := make([]TrendPoint, trendDays)

	// Recorded entries cover the most recent days before today.
	recorded := entries
	if len(recorded) > trendDays-1 {
		recorded = recorded[len(recorded)-(trendDays-1):]
	}

	for i := range points {
		day := now.AddDate(0, 0, i-(trendDays-1))
		points[i].Label = day.Format("Mon")
	}

	// Fill from the end: today is actual, then recorded, then simulated.
	points[trendDays-1].Liters = daily

	idx := trendDays - 2
	for j := len(recorded) - 1; j >= 0 && idx >= 0; j-- {
		points[idx].Liters = recorded[j].DailyLiters
		idx--
	}
	for ; idx >= 0; idx-- {
		factor := 0.8 + rng.Float64()*0.4
		points[idx].Liters = int(float64(daily) * factor)
		points[idx].Simulated = true
	}

	return points
}
