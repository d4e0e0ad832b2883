// Package auth implements the admin session boundary: a fixed credential
// pair checked at login and an in-memory token store gating catalog
// mutation.
package auth

import (
	"crypto/subtle"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CookieName is the session cookie carried by the back-office.
const CookieName = "admin_session"

// DefaultTTL is how long an admin session stays valid.
const DefaultTTL = 24 * time.Hour

// Sessions issues and validates admin session tokens. Tokens live in
// memory and do not survive a restart.
type Sessions struct {
	user string
	pass string
	ttl  time.Duration

	mu     sync.Mutex
	tokens map[string]time.Time
}

// NewSessions creates a session store for the given credential pair. The
// pair is supplied out-of-band; when either value is empty every login
// fails.
func NewSessions(user, pass string, ttl time.Duration) *Sessions {
	return &Sessions{
		user:   user,
		pass:   pass,
		ttl:    ttl,
		tokens: make(map[string]time.Time),
	}
}

// Login checks the credentials and, on success, issues a fresh session
// token.
func (s *Sessions) Login(user, pass string) (string, bool) {
	if s.user == "" || s.pass == "" {
		return "", false
	}
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(s.user)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(s.pass)) == 1
	if !userOK || !passOK {
		return "", false
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = time.Now().Add(s.ttl)
	s.mu.Unlock()
	return token, true
}

// Valid reports whether the token belongs to a live session. Expired
// tokens are evicted on sight.
func (s *Sessions) Valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.tokens[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(s.tokens, token)
		return false
	}
	return true
}

// Logout invalidates the token. Unknown tokens are ignored.
func (s *Sessions) Logout(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
