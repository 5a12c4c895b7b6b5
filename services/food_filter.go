package services

import "strings"

// FoodFilter reduces free-text labels to the food-related subset.
type FoodFilter struct {
	vocabulary []string
}

func NewFoodFilter(vocabulary []string) *FoodFilter {
	terms := make([]string, 0, len(vocabulary))
	for _, t := range vocabulary {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			terms = append(terms, t)
		}
	}
	return &FoodFilter{vocabulary: terms}
}

// FilterFood keeps a label iff it case-insensitively contains one of
// the vocabulary terms. Output is de-duplicated; an empty result is a
// valid outcome, not an error.
func (f *FoodFilter) FilterFood(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	var items []string
	for _, label := range labels {
		lower := strings.ToLower(label)
		if _, dup := seen[lower]; dup {
			continue
		}
		for _, term := range f.vocabulary {
			if strings.Contains(lower, term) {
				seen[lower] = struct{}{}
				items = append(items, label)
				break
			}
		}
	}
	return items
}
