package catalog

import "github.com/kleyver/kleyver-app/internal/model"

// CountCategories counts photo records per known category. Views use it on
// snapshots they received from Subscribe.
func CountCategories(records []model.MediaRecord) map[model.Category]int {
	counts := make(map[model.Category]int, len(model.KnownCategories()))
	for _, cat := range model.KnownCategories() {
		counts[cat] = 0
	}
	for _, r := range records {
		if r.IsPhoto() && r.Category.IsKnown() {
			counts[r.Category]++
		}
	}
	return counts
}

// Summarize computes totals, distinct locations, favorites and category counts
func Summarize(records []model.MediaRecord) Summary {
	locations := make(map[string]struct{}, len(records))
	favorites := 0
	for _, r := range records {
		locations[r.Location] = struct{}{}
		if r.Favorite {
			favorites++
		}
	}
	return Summary{
		Total:             len(records),
		DistinctLocations: len(locations),
		Favorites:         favorites,
		Categories:        CountCategories(records),
	}
}
