package services

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func TestCompareMealsVerdicts(t *testing.T) {
	cases := []struct {
		name  string
		reply string
		want  Outcome
	}{
		{"marker A", "The healthier meal is User 1's meal.", OutcomeA},
		{"marker B", "User 2 wins this one.", OutcomeB},
		{"A checked before B", "User 1 beats User 2 here.", OutcomeA},
		{"no marker", "Both meals look balanced.", OutcomeTie},
		{"empty reply", "", OutcomeTie},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewMealComparator(&fakeGenerator{reply: tc.reply})
			got := c.CompareMeals(context.Background(), []string{"a"}, []string{"b"})
			if got != tc.want {
				t.Fatalf("CompareMeals with reply %q = %v, want %v", tc.reply, got, tc.want)
			}
		})
	}
}

func TestCompareMealsScenario(t *testing.T) {
	gen := &fakeGenerator{reply: "User 1's meal of grilled chicken and broccoli is healthier."}
	c := NewMealComparator(gen)

	got := c.CompareMeals(context.Background(),
		[]string{"grilled chicken", "broccoli"},
		[]string{"soda", "chips"},
	)
	if got != OutcomeA {
		t.Fatalf("expected OutcomeA, got %v", got)
	}

	if len(gen.prompts) != 1 {
		t.Fatalf("expected one generation call, got %d", len(gen.prompts))
	}
	prompt := gen.prompts[0]
	if !strings.Contains(prompt, "grilled chicken, broccoli") {
		t.Errorf("prompt missing first meal: %q", prompt)
	}
	if !strings.Contains(prompt, "soda, chips") {
		t.Errorf("prompt missing second meal: %q", prompt)
	}
	if !strings.Contains(prompt, "Healthier meal:") {
		t.Errorf("prompt missing verdict cue: %q", prompt)
	}
}

func TestCompareMealsDegradesToTieOnFailure(t *testing.T) {
	c := NewMealComparator(&fakeGenerator{err: errors.New("capability timeout")})

	got := c.CompareMeals(context.Background(), []string{"a"}, []string{"b"})
	if got != OutcomeTie {
		t.Fatalf("expected Tie on capability failure, got %v", got)
	}
}
