package store

import (
	"context"
	"time"

	"github.com/MKhiriev/ff-to-go/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists local accounts.
type UserRepository interface {
	// CreateUser stores user and returns it with UserID and timestamps set.
	// Returns [ErrEmailAlreadyExists] when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns [ErrNoUserWasFound] when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns [ErrNoUserWasFound] when no account matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error
	UpdatePassword(ctx context.Context, userID int64, password string) error
}

// SessionStorage persists sessions keyed by session id.
type SessionStorage interface {
	// Save creates or replaces the session.
	Save(ctx context.Context, session models.Session) error
	// Get returns [ErrSessionNotFound] for unknown sessions. Expired
	// sessions are removed and reported as not found.
	Get(ctx context.Context, sessionID string) (models.Session, error)
	// Delete is a no-op for unknown sessions.
	Delete(ctx context.Context, sessionID string) error
	// PurgeExpired removes every session expired at now and returns how
	// many were removed.
	PurgeExpired(ctx context.Context, now time.Time) (int, error)
}
