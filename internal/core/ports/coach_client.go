package ports

import "context"

// CoachClient is the external AI collaborator. Implementations must honour
// ctx cancellation: the caller bounds every request with a deadline.
type CoachClient interface {
	Feedback(ctx context.Context, message string) (string, error)
}
