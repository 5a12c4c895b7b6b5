package services

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// MatchService produces partner recommendations from a user's profile
// via the text-generation capability.
type MatchService struct {
	gen TextGenerator
}

func NewMatchService(gen TextGenerator) *MatchService {
	return &MatchService{gen: gen}
}

type PartnerRecommendation struct {
	Name string `json:"name"`
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Recommend builds a prompt from the profile fields and splits the
// reply into one recommendation per line. A capability failure
// degrades to an empty list.
func (s *MatchService) Recommend(ctx context.Context, profile map[string]string) []PartnerRecommendation {
	var b strings.Builder
	b.WriteString("Find a suitable partner for a user with the following information:\n\n")
	for key, value := range profile {
		fmt.Fprintf(&b, "%s: %s\n", capitalize(key), value)
	}
	b.WriteString("\nRecommendations:\n")

	reply, err := s.gen.Generate(ctx, b.String())
	if err != nil {
		log.Printf("match recommendation degraded to empty: %v", err)
		return nil
	}

	var recs []PartnerRecommendation
	lines := strings.Split(reply, "\n")
	if len(lines) > 1 {
		lines = lines[1:]
	}
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			recs = append(recs, PartnerRecommendation{Name: line})
		}
	}
	return recs
}
