// Package projection derives the filtered inventory view.
package projection

import (
	"strings"

	"opsboard/m/domain"
)

// Project returns, in store order, the items whose description or code
// contains searchTerm (case-insensitive) and whose category equals category.
// An empty searchTerm or category matches everything. items is not modified.
func Project(items []domain.InventoryItem, searchTerm string, category domain.Category) []domain.InventoryItem {
	term := strings.ToLower(searchTerm)
	out := make([]domain.InventoryItem, 0, len(items))
	for _, item := range items {
		if !matchesSearch(item, term) {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesSearch(item domain.InventoryItem, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Description), term) ||
		strings.Contains(strings.ToLower(item.Code), term)
}
