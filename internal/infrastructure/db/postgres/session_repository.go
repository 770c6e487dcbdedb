package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/traintrack/training-api/internal/core/domain"
)

// SessionRepository is the gorm-backed audit log of issued tokens. Nothing in
// the request path reads it; rows exist for bookkeeping and offline review.
type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

type sessionModel struct {
	ID        string    `gorm:"primaryKey"`
	UserID    string    `gorm:"index;not null"`
	Token     string    `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (sessionModel) TableName() string { return "sessions" }

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	row := sessionModel{
		ID:        session.ID,
		UserID:    session.UserID,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteByToken(ctx context.Context, tokenString string) error {
	if err := r.db.WithContext(ctx).Where("token = ?", tokenString).Delete(&sessionModel{}).Error; err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
