package pos

import (
	"sort"
	"strings"

	"go-restaurant-pos/models"
)

// MenuCategories lists the distinct non-empty categories of items, sorted.
func MenuCategories(items []models.MenuItem) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range items {
		if m.Category != "" && !seen[m.Category] {
			seen[m.Category] = true
			out = append(out, m.Category)
		}
	}
	sort.Strings(out)
	return out
}

// FilterMenu matches term case-insensitively against name and description.
// An empty category or "all" matches every category.
func FilterMenu(items []models.MenuItem, term, category string) []models.MenuItem {
	term = strings.ToLower(strings.TrimSpace(term))
	var out []models.MenuItem
	for _, m := range items {
		if category != "" && !strings.EqualFold(category, "all") && m.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(m.Name), term) &&
			!strings.Contains(strings.ToLower(m.Description), term) {
			continue
		}
		out = append(out, m)
	}
	return out
}
