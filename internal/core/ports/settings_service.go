package ports

import "context"

// UserSettings is the merged profile + preferences view served by the
// settings endpoints.
type UserSettings struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Notifications bool   `json:"notifications"`
	Theme         string `json:"theme"`
}

// SettingsService reads and updates a user's profile and preferences.
type SettingsService interface {
	Get(ctx context.Context, userID string) (*UserSettings, error)
	Update(ctx context.Context, userID string, settings UserSettings) error
}
