package user

import (
	"context"

	userRepo "aircnc/database/repository/user"
	"aircnc/models"
)

// UserService exposes account lookup and the login-time upsert.
type UserService interface {
	Save(ctx context.Context, email string, user models.User) (*models.UpdateResult, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Save upserts the account keyed by email, so repeated logins reuse one document.
func (s *DefaultUserService) Save(ctx context.Context, email string, user models.User) (*models.UpdateResult, error) {
	return s.Repo.Upsert(ctx, email, user)
}

// GetByEmail returns the account, or nil when none exists.
func (s *DefaultUserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.Repo.GetByEmail(ctx, email)
}
