// Package sessions declares the data-access contract for the sessions table.
package sessions

import (
	"context"
	"time"

	"github.com/deskdev/deskdev-setup/internal/models"
)

// Repository issues, looks up and removes session records. It does not
// decide whether a session is still acceptable; callers use
// models.Session.Expired for that.
type Repository interface {
	// Create stores a new session for userID that expires after validity and
	// returns it with its generated token. An unknown userID yields
	// common.ErrNotFound.
	Create(ctx context.Context, userID int64, validity time.Duration) (*models.Session, error)

	// Find returns common.ErrNotFound when the token is absent.
	Find(ctx context.Context, id string) (*models.Session, error)

	// Delete removes a session. Deleting an absent token is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes every session whose expiry is at or before now
	// and returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
