package catalog

import "strings"

// Search filters items by a free-text query and a category selector.
//
// The query matches case-insensitively as a substring of the item name; an
// empty query matches everything. CategoryAll matches every category.
// Input order is preserved, so searching the canonical catalog returns
// results in canonical order.
func Search(items []Item, query string, category Category) []Item {
	needle := strings.ToLower(strings.TrimSpace(query))

	var matched []Item
	for _, item := range items {
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		if category != CategoryAll && item.Category != category {
			continue
		}
		matched = append(matched, item)
	}

	return matched
}
