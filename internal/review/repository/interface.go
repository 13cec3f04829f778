package repository

import (
	"context"
	"errors"

	"task-capture/internal/review"
)

// ErrNotFound is returned when a session key does not exist or has expired.
var ErrNotFound = errors.New("session not found")

// Store is the interface for review session persistence.
type Store interface {
	Save(ctx context.Context, s review.Session) error
	Get(ctx context.Context, id string) (review.Session, error)
	Delete(ctx context.Context, id string) error
	// SetLatest remembers the newest session of a user.
	SetLatest(ctx context.Context, userID, sessionID string) error
	Latest(ctx context.Context, userID string) (string, error)
}
