package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Suggestion IDs. Stable across runs so the caller-owned implemented set
// survives regeneration.
const (
	// SuggestionShorterShowers recommends cutting shower time.
	SuggestionShorterShowers = "shorter-showers"

	// SuggestionShowerAlternate recommends showering every other day.
	SuggestionShowerAlternate = "shower-alternate"

	// SuggestionEfficientBuckets recommends reusing bucket water.
	SuggestionEfficientBuckets = "efficient-buckets"

	// SuggestionRefillableBottles recommends refillable bottles.
	SuggestionRefillableBottles = "refillable-bottles"

	// SuggestionFixLeaks recommends checking taps and pipes for leaks.
	SuggestionFixLeaks = "fix-leaks"

	// SuggestionRainwater recommends collecting rainwater.
	SuggestionRainwater = "rainwater-harvesting"

	// SuggestionTurnOffTap recommends closing the tap while brushing.
	SuggestionTurnOffTap = "turn-off-tap"

	// SuggestionFullLoads recommends running full wash loads only.
	SuggestionFullLoads = "full-load-washing"

	// SuggestionEfficientPlants recommends drought-resistant plants.
	SuggestionEfficientPlants = "water-efficient-plants"
)

// GenerateSuggestions derives a personalized suggestion list from the
// user's counters and daily liter total.
//
// Rules are evaluated independently in a fixed order, each contributing
// zero or one suggestion, so the output is deterministic: identical inputs
// always yield the same list in the same order. Three universal
// suggestions are always appended after the conditional rules.
func GenerateSuggestions(counters UsageCounters, dailyTotal int) []Suggestion {
	showers := clampCount(counters.Showers)
	buckets := clampCount(counters.Buckets)
	bottles := clampCount(counters.Bottles)

	var suggestions []Suggestion

	if showers > 1 {
		suggestions = append(suggestions, Suggestion{
			ID:    SuggestionShorterShowers,
			Title: "Take Shorter Showers",
			Description: fmt.Sprintf(
				"Reduce shower time by 2 minutes to save ~25 liters per shower. "+
					"With %d showers daily, that's %d liters saved per day.",
				showers, shorterShowerSavings*showers),
			WaterSaved: shorterShowerSavings * showers,
			Difficulty: DifficultyEasy,
			Category:   CategoryShower,
		})
	}

	if showers >= 1 {
		suggestions = append(suggestions, Suggestion{
			ID:    SuggestionShowerAlternate,
			Title: "Shower Every Other Day",
			Description: "Consider showering every alternate day when possible. " +
				"This could save up to 150 liters every other day.",
			WaterSaved: alternateShowerSavings,
			Difficulty: DifficultyMedium,
			Category:   CategoryShower,
		})
	}

	if buckets > bucketThreshold {
		suggestions = append(suggestions, Suggestion{
			ID:    SuggestionEfficientBuckets,
			Title: "Optimize Bucket Usage",
			Description: fmt.Sprintf(
				"You're using %d buckets daily. Reusing water from washing "+
					"vegetables for plants can reduce usage by 2-3 buckets.",
				buckets),
			WaterSaved: bucketReuseSavings,
			Difficulty: DifficultyEasy,
			Category:   CategoryKitchen,
		})
	}

	if bottles > bottleThreshold {
		suggestions = append(suggestions, Suggestion{
			ID:    SuggestionRefillableBottles,
			Title: "Switch to Refillable Bottles",
			Description: fmt.Sprintf(
				"Using %d bottles daily? Get a good filter and refill bottles "+
					"to reduce waste and save water used in manufacturing.",
				bottles),
			WaterSaved: bottleManufactureSavings * bottles,
			Difficulty: DifficultyEasy,
			Category:   CategoryGeneral,
		})
	}

	if dailyTotal > highUsageDailyThreshold {
		suggestions = append(suggestions,
			Suggestion{
				ID:    SuggestionFixLeaks,
				Title: "Check for Water Leaks",
				Description: "A dripping faucet can waste 15-20 liters per day. " +
					"Check all taps, pipes, and toilets for leaks.",
				WaterSaved: leakFixSavings,
				Difficulty: DifficultyEasy,
				Category:   CategoryGeneral,
			},
			Suggestion{
				ID:    SuggestionRainwater,
				Title: "Collect Rainwater",
				Description: "Set up a simple rainwater collection system for " +
					"watering plants and cleaning. Can save 50+ liters daily " +
					"during rainy season.",
				WaterSaved: rainwaterSavings,
				Difficulty: DifficultyHard,
				Category:   CategoryGarden,
			},
		)
	}

	suggestions = append(suggestions,
		Suggestion{
			ID:    SuggestionTurnOffTap,
			Title: "Turn Off Tap While Brushing",
			Description: "Keep the tap off while brushing teeth or soaping " +
				"hands. This simple habit saves 10-15 liters daily.",
			WaterSaved: tapOffSavings,
			Difficulty: DifficultyEasy,
			Category:   CategoryGeneral,
		},
		Suggestion{
			ID:    SuggestionFullLoads,
			Title: "Wash Full Loads Only",
			Description: "Wait for a full load before running the washing " +
				"machine or dishwasher. Can save 30-50 liters per wash cycle.",
			WaterSaved: fullLoadSavings,
			Difficulty: DifficultyEasy,
			Category:   CategoryLaundry,
		},
		Suggestion{
			ID:    SuggestionEfficientPlants,
			Title: "Choose Water-Efficient Plants",
			Description: "Replace high-water plants with drought-resistant " +
				"varieties. Native plants typically need 50% less water.",
			WaterSaved: efficientPlantSavings,
			Difficulty: DifficultyMedium,
			Category:   CategoryGarden,
		},
	)

	log.Debug().
		Str("component", "engine").
		Str("operation", "generate_suggestions").
		Int("daily_total", dailyTotal).
		Int("suggestion_count", len(suggestions)).
		Msg("suggestions generated")

	return suggestions
}

// TotalPotentialSavings sums the estimated daily savings of all generated
// suggestions.
func TotalPotentialSavings(suggestions []Suggestion) int {
	total := 0
	for _, s := range suggestions {
		total += s.WaterSaved
	}
	return total
}

// ImplementedSavings sums the savings of the suggestions whose IDs appear
// in the caller-owned implemented set.
func ImplementedSavings(suggestions []Suggestion, implemented map[string]bool) int {
	total := 0
	for _, s := range suggestions {
		if implemented[s.ID] {
			total += s.WaterSaved
		}
	}
	return total
}

// Summarize aggregates a suggestion list against the implemented set.
//
// ImplementedCount and Progress use the full implemented set, including
// IDs whose suggestion is not in the current generation: an ID marked
// under higher counter values stays counted when the counters drop.
// ImplementedSavings sums only the generated suggestions, since a
// suggestion that no longer applies has no savings figure to add. An
// empty suggestion list yields zero progress rather than dividing by
// zero.
func Summarize(suggestions []Suggestion, implemented map[string]bool) SavingsSummary {
	progress := 0.0
	if len(suggestions) > 0 {
		progress = float64(len(implemented)) / float64(len(suggestions)) * 100
	}

	return SavingsSummary{
		SuggestionCount:    len(suggestions),
		ImplementedCount:   len(implemented),
		PotentialSavings:   TotalPotentialSavings(suggestions),
		ImplementedSavings: ImplementedSavings(suggestions, implemented),
		Progress:           progress,
	}
}
