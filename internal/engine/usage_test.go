package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name      string
		counters  UsageCounters
		wantDaily int
	}{
		{
			name:      "defaults",
			counters:  UsageCounters{Showers: 1, Buckets: 3, Bottles: 2},
			wantDaily: 212,
		},
		{
			name:      "all zero",
			counters:  UsageCounters{},
			wantDaily: 0,
		},
		{
			name:      "showers only",
			counters:  UsageCounters{Showers: 2},
			wantDaily: 300,
		},
		{
			name:      "heavy usage",
			counters:  UsageCounters{Showers: 3, Buckets: 8, Bottles: 5},
			wantDaily: 615,
		},
		{
			name:      "negative counters clamp to zero",
			counters:  UsageCounters{Showers: -1, Buckets: -5, Bottles: 2},
			wantDaily: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.counters)

			assert.Equal(t, tt.wantDaily, got.Daily)
			assert.Equal(t, tt.wantDaily*7, got.Weekly)
			assert.Equal(t, tt.wantDaily*30, got.Monthly)
		})
	}
}

// The daily formula must hold component-wise for arbitrary counters.
func TestComputeTotalsFormula(t *testing.T) {
	for s := 0; s <= 4; s++ {
		for b := 0; b <= 6; b += 2 {
			for bo := 0; bo <= 6; bo += 3 {
				counters := UsageCounters{Showers: s, Buckets: b, Bottles: bo}
				got := ComputeTotals(counters)
				require.Equal(t, 150*s+20*b+bo, got.Daily)
			}
		}
	}
}

func TestBreakdown(t *testing.T) {
	counters := UsageCounters{Showers: 2, Buckets: 4, Bottles: 3}
	components := Breakdown(counters)

	require.Len(t, components, 3)
	assert.Equal(t, UsageComponent{Name: "Showers", Count: 2, Liters: 300}, components[0])
	assert.Equal(t, UsageComponent{Name: "Buckets", Count: 4, Liters: 80}, components[1])
	assert.Equal(t, UsageComponent{Name: "Bottles", Count: 3, Liters: 3}, components[2])

	sum := 0
	for _, c := range components {
		sum += c.Liters
	}
	assert.Equal(t, ComputeTotals(counters).Daily, sum)
}

func TestComputeEfficiency(t *testing.T) {
	tests := []struct {
		name        string
		daily       float64
		wantRating  Rating
		wantPercent int
	}{
		{"zero usage", 0, RatingExcellent, 90},
		{"excellent upper bound", 200, RatingExcellent, 90},
		{"good lower edge", 201, RatingGood, 70},
		{"good upper bound", 300, RatingGood, 70},
		{"average lower edge", 301, RatingAverage, 50},
		{"average upper bound", 400, RatingAverage, 50},
		{"high usage lower edge", 401, RatingHighUsage, 30},
		{"extreme usage", 10000, RatingHighUsage, 30},
		{"negative clamps to zero", -50, RatingExcellent, 90},
		{"NaN clamps to zero", math.NaN(), RatingExcellent, 90},
		{"infinity clamps to zero", math.Inf(1), RatingExcellent, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeEfficiency(tt.daily)

			assert.Equal(t, tt.wantRating, got.Rating)
			assert.Equal(t, tt.wantPercent, got.Percent)
		})
	}
}

func TestRatingString(t *testing.T) {
	assert.Equal(t, "Excellent", RatingExcellent.String())
	assert.Equal(t, "Good", RatingGood.String())
	assert.Equal(t, "Average", RatingAverage.String())
	assert.Equal(t, "High Usage", RatingHighUsage.String())
	assert.Equal(t, "Rating(99)", Rating(99).String())
}

func TestDefaultCounters(t *testing.T) {
	assert.Equal(t, UsageCounters{Showers: 1, Buckets: 3, Bottles: 2}, DefaultCounters())
}
