package domain

import (
	"errors"
	"time"
)

var ErrTrainingNotFound = errors.New("training not found")
var ErrUpstream = errors.New("upstream service failed")

// Training records a single coaching exchange: what the user wrote and what
// the AI partner answered.
type Training struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Feedback        string    `json:"feedback"`
	DurationMinutes int       `json:"duration_minutes"`
	Completed       bool      `json:"completed"`
	CreatedAt       time.Time `json:"created_at"`
}
