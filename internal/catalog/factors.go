package catalog

import "strings"

// FallbackLitersPerUnit is the flat factor applied when no table entry
// matches a label. The domain prefers an approximate answer over none.
const FallbackLitersPerUnit = 1000

// Factor is the water cost attributed to producing one unit of an item.
type Factor struct {
	// LitersPerUnit is liters of water per DefaultUnit.
	LitersPerUnit int `json:"liters_per_unit"`

	// DefaultUnit is the unit the factor refers to (kg, cup, pair, ...).
	DefaultUnit string `json:"default_unit"`
}

// FactorEntry pairs a lookup keyword with its factor. Entries live in a
// slice, not a map, so iteration order is the declaration order and
// ResolveFactor is deterministic.
type FactorEntry struct {
	// Key is the lowercase keyword matched against classifier labels.
	Key string `json:"key"`

	// Factor is the water cost for items matching Key.
	Factor Factor `json:"factor"`
}

// factorTable maps item keywords to liters-per-unit factors for the
// recognized-image workflow. Keys are disjoint.
//
//nolint:gochecknoglobals // Fixed reference data, loaded once and never mutated.
var factorTable = []FactorEntry{
	{Key: "rice", Factor: Factor{LitersPerUnit: 2500, DefaultUnit: "kg"}},
	{Key: "beef", Factor: Factor{LitersPerUnit: 15400, DefaultUnit: "kg"}},
	{Key: "chicken", Factor: Factor{LitersPerUnit: 4300, DefaultUnit: "kg"}},
	{Key: "apple", Factor: Factor{LitersPerUnit: 125, DefaultUnit: "apple"}},
	{Key: "orange", Factor: Factor{LitersPerUnit: 160, DefaultUnit: "orange"}},
	{Key: "bread", Factor: Factor{LitersPerUnit: 1600, DefaultUnit: "loaf"}},
	{Key: "milk", Factor: Factor{LitersPerUnit: 1000, DefaultUnit: "liter"}},
	{Key: "coffee", Factor: Factor{LitersPerUnit: 140, DefaultUnit: "cup"}},
	{Key: "tea", Factor: Factor{LitersPerUnit: 30, DefaultUnit: "cup"}},
	{Key: "cotton", Factor: Factor{LitersPerUnit: 2700, DefaultUnit: "t-shirt"}},
	{Key: "jeans", Factor: Factor{LitersPerUnit: 7500, DefaultUnit: "pair"}},
	{Key: "smartphone", Factor: Factor{LitersPerUnit: 12000, DefaultUnit: "phone"}},
	{Key: "laptop", Factor: Factor{LitersPerUnit: 25000, DefaultUnit: "laptop"}},
}

// FactorTable returns the keyword table in declaration order.
// The returned slice is a copy; callers may not mutate the table.
func FactorTable() []FactorEntry {
	out := make([]FactorEntry, len(factorTable))
	copy(out, factorTable)
	return out
}

// ResolveFactor maps a recognized label to a footprint factor from the
// given table, normally FactorTable().
//
// The label is case-folded, then checked against each table entry in
// order; an entry matches when the label contains the key or the key
// contains the label. The first matching entry wins, which makes
// resolution deterministic even for labels that match several keys.
//
// Returns the matched key alongside the factor so callers can echo the
// canonical item name. A miss returns ErrFactorNotFound; callers are
// expected to fall back to FallbackLitersPerUnit.
func ResolveFactor(table []FactorEntry, label string) (string, Factor, error) {
	needle := strings.ToLower(strings.TrimSpace(label))
	if needle == "" {
		return "", Factor{}, ErrFactorNotFound
	}

	for _, entry := range table {
		if strings.Contains(needle, entry.Key) || strings.Contains(entry.Key, needle) {
			return entry.Key, entry.Factor, nil
		}
	}

	return "", Factor{}, ErrFactorNotFound
}
