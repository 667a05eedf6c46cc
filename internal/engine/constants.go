package engine

// Per-unit water consumption constants (liters).
//
// These are fixed accounting policy, not configuration: every tracked
// counter is converted to liters with these factors before any derived
// total or rating is computed.
const (
	// ShowerLiters is the liters consumed by one average shower.
	ShowerLiters = 150

	// BucketLiters is the liters held by one standard bucket.
	BucketLiters = 20

	// BottleLiters is the liters held by one drinking-water bottle.
	BottleLiters = 1
)

// Scaling constants for derived totals.
const (
	// DaysPerWeek scales a daily total to a weekly total.
	DaysPerWeek = 7

	// DaysPerMonth scales a daily total to a monthly total.
	DaysPerMonth = 30
)

// Efficiency band thresholds (liters per day, inclusive upper bounds).
//
// Exactly one band applies for any non-negative daily total:
//
//	daily <= ExcellentMaxDaily          -> Excellent
//	daily <= GoodMaxDaily               -> Good
//	daily <= AverageMaxDaily            -> Average
//	otherwise                           -> High Usage
const (
	// ExcellentMaxDaily is the inclusive upper bound of the Excellent band.
	ExcellentMaxDaily = 200

	// GoodMaxDaily is the inclusive upper bound of the Good band.
	GoodMaxDaily = 300

	// AverageMaxDaily is the inclusive upper bound of the Average band.
	AverageMaxDaily = 400
)

// Display percentages shown alongside each efficiency band.
const (
	// ExcellentPercent is the progress percentage for the Excellent band.
	ExcellentPercent = 90

	// GoodPercent is the progress percentage for the Good band.
	GoodPercent = 70

	// AveragePercent is the progress percentage for the Average band.
	AveragePercent = 50

	// HighUsagePercent is the progress percentage for the High Usage band.
	HighUsagePercent = 30
)

// Suggestion rule thresholds and savings estimates (liters per day).
const (
	// shorterShowerSavings is saved per daily shower by cutting two minutes.
	shorterShowerSavings = 25

	// alternateShowerSavings is the amortized saving of showering every
	// other day (150 L every second day).
	alternateShowerSavings = 75

	// bucketThreshold is the daily bucket count above which bucket reuse
	// becomes worth suggesting.
	bucketThreshold = 5

	// bucketReuseSavings is saved by reusing kitchen water for plants.
	bucketReuseSavings = 50

	// bottleThreshold is the daily bottle count above which refillable
	// bottles become worth suggesting.
	bottleThreshold = 3

	// bottleManufactureSavings is the manufacturing water saved per
	// single-use bottle replaced by a refill.
	bottleManufactureSavings = 3

	// highUsageDailyThreshold is the daily total above which the high-usage
	// rules (leak check, rainwater harvesting) fire.
	highUsageDailyThreshold = 300

	// leakFixSavings is saved by fixing a typical dripping faucet.
	leakFixSavings = 20

	// rainwaterSavings is saved daily by a simple rainwater collection setup.
	rainwaterSavings = 50

	// tapOffSavings is saved by turning the tap off while brushing.
	tapOffSavings = 12

	// fullLoadSavings is saved per wash cycle by waiting for full loads.
	fullLoadSavings = 40

	// efficientPlantSavings is saved daily by drought-resistant planting.
	efficientPlantSavings = 30
)
