// Package users declares the data-access contract for the users table.
package users

import (
	"context"

	"github.com/deskdev/deskdev-setup/internal/models"
)

// Repository reads and writes user records.
type Repository interface {
	// Create inserts u and fills in the generated ID and column defaults.
	// A GitHub ID already taken by another row yields common.ErrAlreadyExists.
	Create(ctx context.Context, u *models.User) (*models.User, error)

	// GetByID and GetByGitHubID return common.ErrNotFound for absent rows.
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByGitHubID(ctx context.Context, githubID int64) (*models.User, error)

	// TouchLastLogin sets last_login to the current time.
	TouchLastLogin(ctx context.Context, id int64) error
}
