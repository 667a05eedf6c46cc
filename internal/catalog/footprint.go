package catalog

import (
	"errors"
	"math"

	"github.com/rs/zerolog/log"
)

// FootprintResult is the terminal output of the label-to-footprint
// workflow. Results are created on demand and replaced wholesale on
// recalculation, never mutated.
type FootprintResult struct {
	// Item is the matched table keyword, or the raw label when the
	// fallback factor was used.
	Item string `json:"item"`

	// Quantity is the user-entered amount.
	Quantity float64 `json:"quantity"`

	// Unit is the unit the quantity refers to.
	Unit string `json:"unit"`

	// WaterLiters is Quantity times the resolved liters-per-unit factor.
	WaterLiters float64 `json:"water_liters"`

	// Characteristics is optional free text supplied by the user.
	Characteristics string `json:"characteristics,omitempty"`

	// Fallback is true when no factor matched and the flat
	// FallbackLitersPerUnit was applied.
	Fallback bool `json:"fallback"`
}

// ComputeFootprint multiplies a quantity by a factor's liters-per-unit.
//
// Quantity is explicit user input from a single-purpose field, so invalid
// values fail with ErrInvalidQuantity instead of being coerced: the error
// is meant to surface as a validation message.
func ComputeFootprint(quantity float64, factor Factor) (float64, error) {
	if quantity <= 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return 0, ErrInvalidQuantity
	}
	return quantity * float64(factor.LitersPerUnit), nil
}

// EstimateFootprint runs the full resolve-and-compute workflow for a
// recognized or hand-entered label.
//
// The label is resolved against the factor table; on a miss the flat
// fallback factor of 1000 L/unit is applied and the raw label is echoed as
// the item name. When unit is empty the resolved factor's default unit is
// used ("unit" for fallback results). Only an invalid quantity fails.
func EstimateFootprint(label string, quantity float64, unit, characteristics string) (FootprintResult, error) {
	matchedItem := label
	factor := Factor{LitersPerUnit: FallbackLitersPerUnit, DefaultUnit: "unit"}
	fallback := false

	key, resolved, err := ResolveFactor(FactorTable(), label)
	switch {
	case err == nil:
		matchedItem = key
		factor = resolved
	case errors.Is(err, ErrFactorNotFound):
		fallback = true
		log.Debug().
			Str("component", "catalog").
			Str("operation", "estimate_footprint").
			Str("label", label).
			Msg("no factor matched label, using flat fallback")
	default:
		return FootprintResult{}, err
	}

	liters, err := ComputeFootprint(quantity, factor)
	if err != nil {
		return FootprintResult{}, err
	}

	if unit == "" {
		unit = factor.DefaultUnit
	}

	return FootprintResult{
		Item:            matchedItem,
		Quantity:        quantity,
		Unit:            unit,
		WaterLiters:     liters,
		Characteristics: characteristics,
		Fallback:        fallback,
	}, nil
}
