package ports

import (
	"context"

	"github.com/traintrack/training-api/internal/core/domain"
)

// SessionRepository persists the audit log of issued tokens.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	DeleteByToken(ctx context.Context, tokenString string) error
}
