// Package engine implements the water usage accounting and suggestion core.
//
// It converts raw daily usage counters (showers, buckets, bottles) into
// liter totals and an efficiency rating, and derives a personalized,
// deterministic list of water-saving suggestions from the same counters.
// All operations are pure functions of their inputs: the engine holds no
// state between calls, so callers may re-invoke it on every input change.
package engine

import "fmt"

// UsageCounters is a day's worth of raw usage input.
//
// Counters are supplied by the user and may be edited freely; negative
// values are clamped to zero during computation rather than rejected.
type UsageCounters struct {
	// Showers is the number of showers taken per day.
	Showers int `json:"showers"`

	// Buckets is the number of buckets used per day.
	Buckets int `json:"buckets"`

	// Bottles is the number of water bottles consumed per day.
	Bottles int `json:"bottles"`
}

// DefaultCounters returns the starting counter values shown before the
// user has entered anything.
func DefaultCounters() UsageCounters {
	return UsageCounters{Showers: 1, Buckets: 3, Bottles: 2}
}

// UsageTotals holds derived liter totals for one set of counters.
//
// Weekly and Monthly are always exact multiples of Daily (7x and 30x).
type UsageTotals struct {
	// Daily is the liters consumed per day.
	Daily int `json:"daily"`

	// Weekly is Daily scaled to seven days.
	Weekly int `json:"weekly"`

	// Monthly is Daily scaled to thirty days.
	Monthly int `json:"monthly"`
}

// UsageComponent is one source's contribution to the daily total.
type UsageComponent struct {
	// Name identifies the source ("Showers", "Buckets", "Bottles").
	Name string `json:"name"`

	// Count is the raw counter value after clamping.
	Count int `json:"count"`

	// Liters is the source's contribution to the daily total.
	Liters int `json:"liters"`
}

// Rating classifies a daily total into an efficiency band.
type Rating int

const (
	// RatingExcellent is a daily total at or below 200 liters.
	RatingExcellent Rating = iota

	// RatingGood is a daily total at or below 300 liters.
	RatingGood

	// RatingAverage is a daily total at or below 400 liters.
	RatingAverage

	// RatingHighUsage is any daily total above 400 liters.
	RatingHighUsage
)

// String returns the human-readable label for the rating.
func (r Rating) String() string {
	switch r {
	case RatingExcellent:
		return "Excellent"
	case RatingGood:
		return "Good"
	case RatingAverage:
		return "Average"
	case RatingHighUsage:
		return "High Usage"
	default:
		return fmt.Sprintf("Rating(%d)", r)
	}
}

// Efficiency is the rating for a daily total plus its display percentage.
type Efficiency struct {
	// Rating is the efficiency band.
	Rating Rating `json:"rating"`

	// Percent is the progress-bar percentage shown for the band.
	Percent int `json:"percent"`
}

// Difficulty grades how hard a suggestion is to adopt.
type Difficulty string

const (
	// DifficultyEasy marks habits adoptable immediately.
	DifficultyEasy Difficulty = "Easy"

	// DifficultyMedium marks habits needing some planning.
	DifficultyMedium Difficulty = "Medium"

	// DifficultyHard marks habits needing equipment or installation.
	DifficultyHard Difficulty = "Hard"
)

// SuggestionCategory groups suggestions by the area of the home they touch.
type SuggestionCategory string

const (
	// CategoryShower covers bathing habits.
	CategoryShower SuggestionCategory = "shower"

	// CategoryKitchen covers cooking and washing-up habits.
	CategoryKitchen SuggestionCategory = "kitchen"

	// CategoryLaundry covers clothes washing habits.
	CategoryLaundry SuggestionCategory = "laundry"

	// CategoryGarden covers outdoor watering habits.
	CategoryGarden SuggestionCategory = "garden"

	// CategoryGeneral covers everything else.
	CategoryGeneral SuggestionCategory = "general"
)

// Suggestion is one recommended behavior change with its estimated saving.
type Suggestion struct {
	// ID is a stable identifier used to track implementation state.
	ID string `json:"id"`

	// Title is the short display name.
	Title string `json:"title"`

	// Description explains the habit and its impact for this user.
	Description string `json:"description"`

	// WaterSaved is the estimated liters saved per day when adopted.
	WaterSaved int `json:"water_saved"`

	// Difficulty grades adoption effort.
	Difficulty Difficulty `json:"difficulty"`

	// Category is the area of the home the suggestion touches.
	Category SuggestionCategory `json:"category"`
}

// SavingsSummary aggregates a suggestion list against the caller-owned
// implemented set.
type SavingsSummary struct {
	// SuggestionCount is the number of generated suggestions.
	SuggestionCount int `json:"suggestion_count"`

	// ImplementedCount is the size of the implemented set, including IDs
	// outside the current generation.
	ImplementedCount int `json:"implemented_count"`

	// PotentialSavings is the sum of all generated savings, liters/day.
	PotentialSavings int `json:"potential_savings"`

	// ImplementedSavings sums the savings of the generated suggestions
	// that are implemented.
	ImplementedSavings int `json:"implemented_savings"`

	// Progress is ImplementedCount over SuggestionCount as a percentage,
	// 0 when no suggestions exist.
	Progress float64 `json:"progress"`
}
