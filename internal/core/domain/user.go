package domain

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrUnauthenticated = errors.New("unauthenticated")
var ErrTooManyAttempts = errors.New("too many login attempts")

// Settings holds the per-user preferences shown on the settings page.
type Settings struct {
	Notifications bool   `json:"notifications"`
	Theme         string `json:"theme"`
}

// DefaultSettings applies to accounts that never touched the settings page.
func DefaultSettings() Settings {
	return Settings{Notifications: true, Theme: "light"}
}

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Settings     Settings  `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
