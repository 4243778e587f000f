// Package storage provides abstractions for persistent session storage.
package storage

import (
	"context"

	"github.com/pokertally/pokertally/internal/models"
)

// Store defines the interface for session storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateSession persists a session with its players and transfers in
	// one atomic write. The session.ID and session.CreatedAt fields are
	// populated by the store if unset.
	CreateSession(ctx context.Context, session *models.Session) error

	// GetSession retrieves a session by its ID with players and transfers
	// loaded. Returns an error if the session is not found.
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)

	// ListSessions returns summaries of all sessions, newest first.
	ListSessions(ctx context.Context) ([]models.SessionSummary, error)

	// DeleteSession removes a session and its players and transfers.
	// Returns an error if the session is not found.
	DeleteSession(ctx context.Context, sessionID string) error

	// Close releases any resources held by the store.
	Close() error
}
