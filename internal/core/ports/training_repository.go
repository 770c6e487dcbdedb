package ports

import (
	"context"

	"github.com/traintrack/training-api/internal/core/domain"
)

// TrainingRepository persists coaching exchanges.
type TrainingRepository interface {
	Create(ctx context.Context, training *domain.Training) error
	// ListByUser returns the user's trainings, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.Training, error)
}
