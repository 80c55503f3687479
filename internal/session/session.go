// Package session maps opaque bearer tokens to the tenant and user they
// were issued for.  Sessions live in process memory only: they never
// expire and are lost on restart.  Logout is client-side token discard.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// Session is what a bearer token resolves to.
type Session struct {
	TenantID string
	UserID   string
}

// Store is a concurrency-safe token map.  Create one per server and
// inject it where needed.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]Session)}
}

// Create issues a new token for (tenantID, userID).  Tokens are random
// version 4 UUIDs: 122 bits from crypto/rand, 36 URL-safe characters.
func (s *Store) Create(tenantID, userID string) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	token := id.String()
	s.mu.Lock()
	s.sessions[token] = Session{TenantID: tenantID, UserID: userID}
	s.mu.Unlock()
	return token, nil
}

// Lookup resolves token.
func (s *Store) Lookup(token string) (Session, bool) {
	if token == "" {
		return Session{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[token]
	return sess, ok
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
