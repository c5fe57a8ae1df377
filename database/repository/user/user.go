package userRepo

import (
	"context"

	"aircnc/models"
)

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	// Upsert saves the user document keyed by email, creating it when absent.
	Upsert(ctx context.Context, email string, user models.User) (*models.UpdateResult, error)
	// GetByEmail retrieves a user by email, or nil when none exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
