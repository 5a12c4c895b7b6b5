package services

import (
	"reflect"
	"testing"
)

func TestFilterFoodKeepsOnlyVocabularyMatches(t *testing.T) {
	filter := NewFoodFilter([]string{"food", "fruit", "salad", "dessert"})

	labels := []string{"apple", "banana", "fruit salad"}
	got := filter.FilterFood(labels)

	want := []string{"fruit salad"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FilterFood(%v) = %v, want %v", labels, got, want)
	}
}

func TestFilterFoodCaseInsensitive(t *testing.T) {
	filter := NewFoodFilter([]string{"fruit"})

	got := filter.FilterFood([]string{"FRUIT BOWL", "Fresh Fruit", "rock"})
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %v", got)
	}
}

func TestFilterFoodDeduplicates(t *testing.T) {
	filter := NewFoodFilter([]string{"salad"})

	got := filter.FilterFood([]string{"fruit salad", "Fruit Salad", "fruit salad", "greek salad"})

	seen := map[string]bool{}
	for _, item := range got {
		if seen[item] {
			t.Fatalf("duplicate item %q in %v", item, got)
		}
		seen[item] = true
	}
	// "Fruit Salad" collapses into "fruit salad"
	if len(got) != 2 {
		t.Fatalf("expected 2 distinct items, got %v", got)
	}
}

func TestFilterFoodOutputDrawnFromInput(t *testing.T) {
	filter := NewFoodFilter([]string{"food", "meal"})
	input := []string{"dog food", "street", "meal prep", "cloud"}

	inputSet := map[string]bool{}
	for _, l := range input {
		inputSet[l] = true
	}

	for _, item := range filter.FilterFood(input) {
		if !inputSet[item] {
			t.Fatalf("output item %q not drawn from input", item)
		}
	}
}

func TestFilterFoodIdempotent(t *testing.T) {
	filter := NewFoodFilter([]string{"fruit", "salad", "soup"})

	cases := [][]string{
		{"apple", "fruit salad", "tomato soup", "chair"},
		{"FRUIT", "fruit", "salad"},
		{},
		nil,
	}

	for _, labels := range cases {
		once := filter.FilterFood(labels)
		twice := filter.FilterFood(once)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("filter not idempotent for %v: first %v, second %v", labels, once, twice)
		}
	}
}

func TestFilterFoodEmptyInput(t *testing.T) {
	filter := NewFoodFilter([]string{"food"})

	if got := filter.FilterFood(nil); len(got) != 0 {
		t.Fatalf("expected empty result for nil input, got %v", got)
	}
	if got := filter.FilterFood([]string{"rock", "car"}); len(got) != 0 {
		t.Fatalf("expected empty result for no matches, got %v", got)
	}
}
