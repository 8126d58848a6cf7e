package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a missing or expired record.
var ErrNotFound = errors.New("record not found")

// Session is a signed-in admin bound to the consultation API bearer token.
type Session struct {
	ID         string
	Token      string
	AdminID    string
	AdminName  string
	AdminEmail string
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

// Expired reports whether the session is no longer usable at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// SessionStore persists admin sessions.
type SessionStore interface {
	PutSession(ctx context.Context, session Session) error
	// GetSession returns ErrNotFound for unknown and expired sessions.
	GetSession(ctx context.Context, sessionID string, now time.Time) (Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// Store is a composite interface for admin storage concerns.
type Store interface {
	SessionStore
	Close() error
}
