package ports

import "context"

// LoginThrottle limits failed login attempts per account.
type LoginThrottle interface {
	// Allow reports whether another attempt for this email may proceed.
	Allow(ctx context.Context, email string) (bool, error)
	// RecordFailure notes a failed attempt.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, email string) error
}
