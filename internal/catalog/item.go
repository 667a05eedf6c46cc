// Package catalog provides the static water footprint reference data:
// everyday items with their embedded water cost, free-text search over
// them, and the keyword table used to resolve classifier labels to a
// liters-per-unit factor.
package catalog

import (
	"fmt"
	"strings"
)

// Category groups catalog items.
type Category string

const (
	// CategoryAll matches every item when filtering.
	CategoryAll Category = "all"

	// CategoryFood covers food and drink items.
	CategoryFood Category = "food"

	// CategoryClothing covers garments and footwear.
	CategoryClothing Category = "clothing"

	// CategoryElectronics covers consumer electronics.
	CategoryElectronics Category = "electronics"
)

// ParseCategory validates a category selector string.
// Matching is case-insensitive; an empty string means CategoryAll.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return CategoryAll, nil
	case "food":
		return CategoryFood, nil
	case "clothing":
		return CategoryClothing, nil
	case "electronics":
		return CategoryElectronics, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}

// Item is one entry of the water footprint reference catalog.
// Items are immutable; the catalog is loaded once as fixed data.
type Item struct {
	// ID uniquely identifies the item within the catalog.
	ID int `json:"id"`

	// Name is the display name, matched by Search.
	Name string `json:"name"`

	// Category groups the item.
	Category Category `json:"category"`

	// Liters is the water needed to produce one unit.
	Liters int `json:"liters"`

	// Unit is the unit the Liters figure refers to.
	Unit string `json:"unit"`

	// Fact is an accompanying did-you-know blurb.
	Fact string `json:"fact"`
}
