package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/traintrack/training-api/internal/core/domain"
	"github.com/traintrack/training-api/internal/core/ports"
)

type settingsService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

// NewSettingsService returns a SettingsService backed by the user repository.
func NewSettingsService(users ports.UserRepository, logger zerolog.Logger) ports.SettingsService {
	return &settingsService{users: users, logger: logger}
}

// Get merges the profile fields with the stored preferences.
func (s *settingsService) Get(ctx context.Context, userID string) (*ports.UserSettings, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings := user.Settings
	if settings.Theme == "" {
		settings = domain.DefaultSettings()
	}

	return &ports.UserSettings{
		Name:          user.Name,
		Email:         user.Email,
		Notifications: settings.Notifications,
		Theme:         settings.Theme,
	}, nil
}

func (s *settingsService) Update(ctx context.Context, userID string, in ports.UserSettings) error {
	err := s.users.UpdateSettings(ctx, userID, in.Name, in.Email, domain.Settings{
		Notifications: in.Notifications,
		Theme:         in.Theme,
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("user_id", userID).Msg("settings updated")
	return nil
}
