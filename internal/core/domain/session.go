package domain

import "time"

// Session is the persisted record of an issued token. It is bookkeeping for
// audit purposes: request authorization relies on the token's own signature
// and expiry, never on this table.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
