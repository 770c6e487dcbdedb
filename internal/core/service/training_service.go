package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/traintrack/training-api/internal/api/metrics"
	"github.com/traintrack/training-api/internal/core/domain"
	"github.com/traintrack/training-api/internal/core/ports"
)

const defaultSessionTitle = "Training Session"

type trainingService struct {
	trainings ports.TrainingRepository
	coach     ports.CoachClient
	timeout   time.Duration
	logger    zerolog.Logger
}

// NewTrainingService returns a TrainingService. timeout bounds every call to
// the AI partner; a hung upstream must never hang the request.
func NewTrainingService(
	trainings ports.TrainingRepository,
	coach ports.CoachClient,
	timeout time.Duration,
	logger zerolog.Logger,
) ports.TrainingService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &trainingService{
		trainings: trainings,
		coach:     coach,
		timeout:   timeout,
		logger:    logger,
	}
}

// Chat forwards the user's message to the AI partner and persists the
// exchange. The record is only written after the upstream answered: a failed
// call leaves no half-finished training behind.
func (s *trainingService) Chat(ctx context.Context, userID, message string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	feedback, err := s.coach.Feedback(callCtx, message)
	metrics.AIRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AIRequestsTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Str("user_id", userID).Msg("coach request failed")
		return "", domain.ErrUpstream
	}
	metrics.AIRequestsTotal.WithLabelValues("success").Inc()

	training := &domain.Training{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       defaultSessionTitle,
		Description: message,
		Feedback:    feedback,
		Completed:   true,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.trainings.Create(ctx, training); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to persist training")
		return "", err
	}

	metrics.TrainingsCreatedTotal.Inc()
	return feedback, nil
}

func (s *trainingService) List(ctx context.Context, userID string) ([]domain.Training, error) {
	return s.trainings.ListByUser(ctx, userID)
}
