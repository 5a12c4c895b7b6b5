package services

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// Outcome of a meal comparison.
type Outcome string

const (
	OutcomeA   Outcome = "A"
	OutcomeB   Outcome = "B"
	OutcomeTie Outcome = "Tie"
)

const (
	markerA = "User 1"
	markerB = "User 2"
)

// MealComparator asks the text-generation capability which of two
// meals is healthier and parses its free-text verdict.
type MealComparator struct {
	gen TextGenerator
}

func NewMealComparator(gen TextGenerator) *MealComparator {
	return &MealComparator{gen: gen}
}

// CompareMeals returns A, B, or Tie. The reply is scanned for the
// "User 1" marker first, then "User 2"; anything else is a Tie. A
// capability failure degrades to Tie and is logged, never surfaced as
// a hard error.
func (c *MealComparator) CompareMeals(ctx context.Context, itemsA, itemsB []string) Outcome {
	prompt := fmt.Sprintf(
		"Compare the following meals and determine which one is healthier:\n\nUser 1 meal: %s\nUser 2 meal: %s\n\nHealthier meal:",
		strings.Join(itemsA, ", "),
		strings.Join(itemsB, ", "),
	)

	reply, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		log.Printf("comparison degraded to tie: %v", err)
		return OutcomeTie
	}

	verdict := strings.TrimSpace(reply)
	switch {
	case strings.Contains(verdict, markerA):
		return OutcomeA
	case strings.Contains(verdict, markerB):
		return OutcomeB
	default:
		return OutcomeTie
	}
}
