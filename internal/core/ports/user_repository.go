package ports

import (
	"context"

	"github.com/traintrack/training-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts and their settings.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateSettings upserts the profile fields and preferences in one call.
	UpdateSettings(ctx context.Context, id, name, email string, settings domain.Settings) error
}
