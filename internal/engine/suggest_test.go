package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suggestionIDs(suggestions []Suggestion) []string {
	ids := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestGenerateSuggestionsDefaultCounters(t *testing.T) {
	// Default counters trigger only the shower-alternate rule plus the
	// three universal suggestions.
	suggestions := GenerateSuggestions(UsageCounters{Showers: 1, Buckets: 3, Bottles: 2}, 300)

	require.Len(t, suggestions, 4)
	assert.Equal(t, []string{
		SuggestionShowerAlternate,
		SuggestionTurnOffTap,
		SuggestionFullLoads,
		SuggestionEfficientPlants,
	}, suggestionIDs(suggestions))

	// 75 + 12 + 40 + 30
	assert.Equal(t, 157, TotalPotentialSavings(suggestions))
}

func TestGenerateSuggestionsAllRules(t *testing.T) {
	suggestions := GenerateSuggestions(UsageCounters{Showers: 3, Buckets: 8, Bottles: 5}, 450)

	require.Len(t, suggestions, 9)
	assert.Equal(t, []string{
		SuggestionShorterShowers,
		SuggestionShowerAlternate,
		SuggestionEfficientBuckets,
		SuggestionRefillableBottles,
		SuggestionFixLeaks,
		SuggestionRainwater,
		SuggestionTurnOffTap,
		SuggestionFullLoads,
		SuggestionEfficientPlants,
	}, suggestionIDs(suggestions))

	byID := make(map[string]Suggestion, len(suggestions))
	for _, s := range suggestions {
		byID[s.ID] = s
	}

	assert.Equal(t, 75, byID[SuggestionShorterShowers].WaterSaved) // 25 * 3 showers
	assert.Equal(t, 75, byID[SuggestionShowerAlternate].WaterSaved)
	assert.Equal(t, 50, byID[SuggestionEfficientBuckets].WaterSaved)
	assert.Equal(t, 15, byID[SuggestionRefillableBottles].WaterSaved) // 3 * 5 bottles
	assert.Equal(t, 20, byID[SuggestionFixLeaks].WaterSaved)
	assert.Equal(t, 50, byID[SuggestionRainwater].WaterSaved)

	// 75+75+50+15+20+50+12+40+30
	assert.Equal(t, 367, TotalPotentialSavings(suggestions))
}

func TestGenerateSuggestionsThresholds(t *testing.T) {
	tests := []struct {
		name     string
		counters UsageCounters
		daily    int
		wantID   string
		present  bool
	}{
		{"one shower skips shorter-showers", UsageCounters{Showers: 1}, 150, SuggestionShorterShowers, false},
		{"two showers fires shorter-showers", UsageCounters{Showers: 2}, 300, SuggestionShorterShowers, true},
		{"zero showers skips shower-alternate", UsageCounters{}, 0, SuggestionShowerAlternate, false},
		{"five buckets skips bucket rule", UsageCounters{Buckets: 5}, 100, SuggestionEfficientBuckets, false},
		{"six buckets fires bucket rule", UsageCounters{Buckets: 6}, 120, SuggestionEfficientBuckets, true},
		{"three bottles skips bottle rule", UsageCounters{Bottles: 3}, 3, SuggestionRefillableBottles, false},
		{"four bottles fires bottle rule", UsageCounters{Bottles: 4}, 4, SuggestionRefillableBottles, true},
		{"daily 300 skips high-usage rules", UsageCounters{Showers: 2}, 300, SuggestionFixLeaks, false},
		{"daily 301 fires high-usage rules", UsageCounters{Showers: 2}, 301, SuggestionFixLeaks, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestions := GenerateSuggestions(tt.counters, tt.daily)
			assert.Equal(t, tt.present, containsID(suggestions, tt.wantID))
		})
	}
}

func containsID(suggestions []Suggestion, id string) bool {
	for _, s := range suggestions {
		if s.ID == id {
			return true
		}
	}
	return false
}

// Identical inputs must yield identical lists, content and order.
func TestGenerateSuggestionsDeterministic(t *testing.T) {
	counters := UsageCounters{Showers: 3, Buckets: 8, Bottles: 5}

	first := GenerateSuggestions(counters, 450)
	second := GenerateSuggestions(counters, 450)

	assert.Equal(t, first, second)
}

func TestSummarize(t *testing.T) {
	suggestions := GenerateSuggestions(UsageCounters{Showers: 1, Buckets: 3, Bottles: 2}, 300)

	tests := []struct {
		name            string
		implemented     map[string]bool
		wantImplemented int
		wantSavings     int
		wantProgress    float64
	}{
		{
			name:         "nothing implemented",
			implemented:  map[string]bool{},
			wantProgress: 0,
		},
		{
			name:            "one implemented",
			implemented:     map[string]bool{SuggestionTurnOffTap: true},
			wantImplemented: 1,
			wantSavings:     12,
			wantProgress:    25,
		},
		{
			name: "all implemented",
			implemented: map[string]bool{
				SuggestionShowerAlternate: true,
				SuggestionTurnOffTap:      true,
				SuggestionFullLoads:       true,
				SuggestionEfficientPlants: true,
			},
			wantImplemented: 4,
			wantSavings:     157,
			wantProgress:    100,
		},
		{
			// IDs marked under other counter values still count toward
			// progress; only their savings drop out.
			name:            "ids outside the generation keep counting",
			implemented:     map[string]bool{SuggestionFixLeaks: true, SuggestionRainwater: true},
			wantImplemented: 2,
			wantSavings:     0,
			wantProgress:    50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(suggestions, tt.implemented)

			assert.Equal(t, 4, got.SuggestionCount)
			assert.Equal(t, tt.wantImplemented, got.ImplementedCount)
			assert.Equal(t, tt.wantSavings, got.ImplementedSavings)
			assert.Equal(t, 157, got.PotentialSavings)
			assert.InDelta(t, tt.wantProgress, got.Progress, 0.0001)
		})
	}
}

func TestSummarizeAfterCountersDrop(t *testing.T) {
	// Mark under 3 showers, then regenerate for 1: the implemented ID is
	// no longer generated but still counts as one of four.
	high := GenerateSuggestions(UsageCounters{Showers: 3, Buckets: 3, Bottles: 2}, 512)
	require.Contains(t, suggestionIDs(high), SuggestionShorterShowers)

	low := GenerateSuggestions(UsageCounters{Showers: 1, Buckets: 3, Bottles: 2}, 212)
	got := Summarize(low, map[string]bool{SuggestionShorterShowers: true})

	assert.Equal(t, 4, got.SuggestionCount)
	assert.Equal(t, 1, got.ImplementedCount)
	assert.Equal(t, 0, got.ImplementedSavings)
	assert.InDelta(t, 25.0, got.Progress, 0.0001)
}

func TestSummarizeEmptyList(t *testing.T) {
	got := Summarize(nil, map[string]bool{SuggestionTurnOffTap: true})

	assert.Zero(t, got.SuggestionCount)
	assert.Zero(t, got.Progress)
	assert.Zero(t, got.PotentialSavings)
}
