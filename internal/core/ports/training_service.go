package ports

import (
	"context"

	"github.com/traintrack/training-api/internal/core/domain"
)

// TrainingService runs coaching exchanges and serves the training history.
type TrainingService interface {
	// Chat forwards the message to the AI partner, persists the exchange, and
	// returns the feedback text.
	Chat(ctx context.Context, userID, message string) (string, error)
	List(ctx context.Context, userID string) ([]domain.Training, error)
}
