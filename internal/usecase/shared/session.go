package shared

import (
	"sync"
	"time"

	"ecocollect/internal/domain/points"
	"ecocollect/internal/infra/backend"
)

// SessionState holds the one active login of this client: the backend user,
// the bearer token it issued, and the user's EcoPoints ledger. The cart
// lives elsewhere and survives logout.
type SessionState struct {
	mu        sync.RWMutex
	user      *backend.User
	token     string
	expiresAt time.Time
	ledger    *points.Ledger
}

func NewSessionState() *SessionState {
	return &SessionState{}
}

// Begin replaces whatever session was active.
func (s *SessionState) Begin(user backend.User, token string, expiresAt time.Time, ledger *points.Ledger) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	s.token = token
	s.expiresAt = expiresAt
	s.ledger = ledger
}

func (s *SessionState) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.token = ""
	s.expiresAt = time.Time{}
	s.ledger = nil
}

func (s *SessionState) User() (backend.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return backend.User{}, false
	}
	return *s.user, true
}

func (s *SessionState) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return "", false
	}
	return s.token, true
}

func (s *SessionState) Ledger() (*points.Ledger, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ledger == nil {
		return nil, false
	}
	return s.ledger, true
}

func (s *SessionState) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// Expired reports whether the session token has outlived its claims. A zero
// expiry means the token carried none and never expires locally.
func (s *SessionState) Expired(now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil || s.expiresAt.IsZero() {
		return false
	}
	return now.After(s.expiresAt)
}
