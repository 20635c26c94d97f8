package store

import (
	"log"
	"sync"
	"time"

	"github.com/calvinwijaya/blackjack-trainer/internal/trainer"
)

// MemoryStore is an in-memory implementation of session storage.
// Sessions live only as long as the process.
type MemoryStore struct {
	sessions map[string]*trainer.Session
	mu       sync.RWMutex
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*trainer.Session),
	}
}

// SaveSession saves a session to the store
func (s *MemoryStore) SaveSession(session *trainer.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
	return nil
}

// GetSession retrieves a session by ID
func (s *MemoryStore) GetSession(id string) (*trainer.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, exists := s.sessions[id]
	if !exists {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// DeleteSession removes a session from the store
func (s *MemoryStore) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[id]; !exists {
		return ErrSessionNotFound
	}

	delete(s.sessions, id)
	return nil
}

// GetAllSessions returns all sessions in the store
func (s *MemoryStore) GetAllSessions() ([]*trainer.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]*trainer.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}

	return sessions, nil
}

// EvictIdle removes sessions not updated within ttl and returns how many
// were removed
func (s *MemoryStore) EvictIdle(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-ttl)
	removed := 0

	for id, session := range s.sessions {
		if session.LastActive().Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		log.Printf("[SESSION] Evicted %d idle sessions", removed)
	}
	return removed
}

// RunEviction evicts idle sessions every interval until stop is closed
func (s *MemoryStore) RunEviction(ttl, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.EvictIdle(ttl)
		case <-stop:
			return
		}
	}
}
