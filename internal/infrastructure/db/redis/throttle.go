package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const throttleWindow = 15 * time.Minute

// LoginThrottle counts failed login attempts per account in Redis.
// Key format: login_attempts:<email>, expiring after throttleWindow.
type LoginThrottle struct {
	client      *redis.Client
	maxAttempts int
}

// NewLoginThrottle creates a LoginThrottle allowing maxAttempts failures per
// window before blocking further tries.
func NewLoginThrottle(client *redis.Client, maxAttempts int) *LoginThrottle {
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	return &LoginThrottle{client: client, maxAttempts: maxAttempts}
}

// Allow reports whether another attempt for this email may proceed.
func (t *LoginThrottle) Allow(ctx context.Context, email string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(email)).Int()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n < t.maxAttempts, nil
}

// RecordFailure increments the failure counter and refreshes its expiry.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) error {
	key := t.key(email)
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, throttleWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("throttle record: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	if err := t.client.Del(ctx, t.key(email)).Err(); err != nil {
		return fmt.Errorf("throttle reset: %w", err)
	}
	return nil
}

func (t *LoginThrottle) key(email string) string {
	return "login_attempts:" + strings.ToLower(email)
}
