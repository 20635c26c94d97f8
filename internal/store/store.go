package store

import (
	"errors"

	"github.com/calvinwijaya/blackjack-trainer/internal/trainer"
)

// ErrSessionNotFound is returned when no session has the requested ID
var ErrSessionNotFound = errors.New("session not found")

// Store defines the interface for training session storage
type Store interface {
	// SaveSession saves a session to the store
	SaveSession(s *trainer.Session) error

	// GetSession retrieves a session by ID
	GetSession(id string) (*trainer.Session, error)

	// DeleteSession removes a session from the store
	DeleteSession(id string) error

	// GetAllSessions returns all sessions in the store
	GetAllSessions() ([]*trainer.Session, error)
}
