package services

import "sync"

// ComparisonResult is what the comparison page renders. It lives in
// session-scoped state only; the durable trace is the Game row.
type ComparisonResult struct {
	ID               string   `json:"id"`
	UserItems        []string `json:"user_items"`
	OpponentItems    []string `json:"opponent_items"`
	Winner           string   `json:"winner"` // "user" | "opponent" | "tie"
	UserPhotoURL     string   `json:"user_photo_url"`
	OpponentPhotoURL string   `json:"opponent_photo_url"`
}

// SessionStore keeps the most recent ComparisonResult per
// authenticated user. Cleared at logout.
type SessionStore struct {
	mu      sync.RWMutex
	results map[uint]ComparisonResult
}

func NewSessionStore() *SessionStore {
	return &SessionStore{results: make(map[uint]ComparisonResult)}
}

func (s *SessionStore) SetResult(userID uint, r ComparisonResult) {
	s.mu.Lock()
	s.results[userID] = r
	s.mu.Unlock()
}

// LastResult returns the stored result, or zero-value defaults when
// the user has none. Never an error.
func (s *SessionStore) LastResult(userID uint) ComparisonResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.results[userID]
}

func (s *SessionStore) Clear(userID uint) {
	s.mu.Lock()
	delete(s.results, userID)
	s.mu.Unlock()
}
