package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/traintrack/training-api/internal/core/domain"
)

// TrainingRepository is the gorm-backed store of coaching exchanges.
type TrainingRepository struct {
	db *gorm.DB
}

func NewTrainingRepository(db *gorm.DB) *TrainingRepository {
	return &TrainingRepository{db: db}
}

type trainingModel struct {
	ID              string    `gorm:"primaryKey"`
	UserID          string    `gorm:"index;not null"`
	Title           string    `gorm:"not null"`
	Description     string    `gorm:"type:text;not null"`
	Feedback        string    `gorm:"type:text"`
	DurationMinutes int       `gorm:"not null;default:0"`
	Completed       bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time `gorm:"index;not null"`
}

func (trainingModel) TableName() string { return "trainings" }

func (r *TrainingRepository) Create(ctx context.Context, training *domain.Training) error {
	row := trainingModel{
		ID:              training.ID,
		UserID:          training.UserID,
		Title:           training.Title,
		Description:     training.Description,
		Feedback:        training.Feedback,
		DurationMinutes: training.DurationMinutes,
		Completed:       training.Completed,
		CreatedAt:       training.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert training: %w", err)
	}
	return nil
}

func (r *TrainingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Training, error) {
	var rows []trainingModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list trainings: %w", err)
	}

	trainings := make([]domain.Training, 0, len(rows))
	for _, row := range rows {
		trainings = append(trainings, domain.Training{
			ID:              row.ID,
			UserID:          row.UserID,
			Title:           row.Title,
			Description:     row.Description,
			Feedback:        row.Feedback,
			DurationMinutes: row.DurationMinutes,
			Completed:       row.Completed,
			CreatedAt:       row.CreatedAt,
		})
	}
	return trainings, nil
}
