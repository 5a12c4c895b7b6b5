package services

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRecommendSplitsReplyLines(t *testing.T) {
	gen := &fakeGenerator{reply: "Here are some matches:\nAlex\nJordan\n\nSam"}
	svc := NewMatchService(gen)

	recs := svc.Recommend(context.Background(), map[string]string{
		"name": "Pat",
		"goal": "lose weight",
	})

	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %v", recs)
	}

	prompt := gen.prompts[0]
	if !strings.Contains(prompt, "Name: Pat") || !strings.Contains(prompt, "Goal: lose weight") {
		t.Fatalf("prompt missing profile fields: %q", prompt)
	}
}

func TestRecommendDegradesToEmpty(t *testing.T) {
	svc := NewMatchService(&fakeGenerator{err: errors.New("capability down")})

	if recs := svc.Recommend(context.Background(), map[string]string{"name": "Pat"}); len(recs) != 0 {
		t.Fatalf("expected empty recommendations on failure, got %v", recs)
	}
}
