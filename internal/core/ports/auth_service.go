package ports

import (
	"context"
	"time"

	"github.com/traintrack/training-api/internal/core/domain"
)

// LoginResult is returned by AuthService.Login on success. The token is handed
// to the transport layer, which owns turning it into a cookie.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// AuthService defines the credential flows: registration, login, logout.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Logout removes the audit session for the presented token. A missing
	// record is not an error: the cookie is cleared either way.
	Logout(ctx context.Context, tokenString string) error
}
