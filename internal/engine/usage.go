package engine

import "math"

// clampCount floors a counter at zero. Counter inputs come from permissive
// form-style entry, so invalid values degrade to zero instead of erroring.
func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// ComputeTotals converts raw usage counters into liter totals.
//
// Each counter is clamped to zero if negative, then converted with the
// fixed per-unit constants: 150 L per shower, 20 L per bucket, 1 L per
// bottle. Weekly and monthly totals are exact 7x and 30x multiples of the
// daily total. ComputeTotals never fails; any input produces a result.
func ComputeTotals(counters UsageCounters) UsageTotals {
	daily := clampCount(counters.Showers)*ShowerLiters +
		clampCount(counters.Buckets)*BucketLiters +
		clampCount(counters.Bottles)*BottleLiters

	return UsageTotals{
		Daily:   daily,
		Weekly:  daily * DaysPerWeek,
		Monthly: daily * DaysPerMonth,
	}
}

// Breakdown returns each source's contribution to the daily total, in the
// fixed order showers, buckets, bottles. The components always sum to
// ComputeTotals(counters).Daily.
func Breakdown(counters UsageCounters) []UsageComponent {
	showers := clampCount(counters.Showers)
	buckets := clampCount(counters.Buckets)
	bottles := clampCount(counters.Bottles)

	return []UsageComponent{
		{Name: "Showers", Count: showers, Liters: showers * ShowerLiters},
		{Name: "Buckets", Count: buckets, Liters: buckets * BucketLiters},
		{Name: "Bottles", Count: bottles, Liters: bottles * BottleLiters},
	}
}

// ComputeEfficiency classifies a daily liter total into an efficiency band.
//
// Bands are inclusive on their upper bound: <=200 Excellent (90%), <=300
// Good (70%), <=400 Average (50%), above that High Usage (30%). Negative
// or non-finite input is clamped to zero so a defined rating always
// results.
func ComputeEfficiency(daily float64) Efficiency {
	if daily < 0 || math.IsNaN(daily) || math.IsInf(daily, 0) {
		daily = 0
	}

	switch {
	case daily <= ExcellentMaxDaily:
		return Efficiency{Rating: RatingExcellent, Percent: ExcellentPercent}
	case daily <= GoodMaxDaily:
		return Efficiency{Rating: RatingGood, Percent: GoodPercent}
	case daily <= AverageMaxDaily:
		return Efficiency{Rating: RatingAverage, Percent: AveragePercent}
	default:
		return Efficiency{Rating: RatingHighUsage, Percent: HighUsagePercent}
	}
}
