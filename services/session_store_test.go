package services

import "testing"

func TestSessionStoreRoundTrip(t *testing.T) {
	s := NewSessionStore()

	r := ComparisonResult{ID: "r1", Winner: "user", UserItems: []string{"salad"}}
	s.SetResult(7, r)

	got := s.LastResult(7)
	if got.ID != "r1" || got.Winner != "user" {
		t.Fatalf("LastResult = %+v, want %+v", got, r)
	}
}

func TestSessionStoreEmptyDefaults(t *testing.T) {
	s := NewSessionStore()

	got := s.LastResult(42)
	if got.ID != "" || got.Winner != "" || len(got.UserItems) != 0 {
		t.Fatalf("expected zero-value result for unknown user, got %+v", got)
	}
}

func TestSessionStoreClearedAtLogout(t *testing.T) {
	s := NewSessionStore()
	s.SetResult(7, ComparisonResult{ID: "r1"})

	s.Clear(7)

	if got := s.LastResult(7); got.ID != "" {
		t.Fatalf("result survived logout: %+v", got)
	}
}
