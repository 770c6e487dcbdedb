package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/traintrack/training-api/internal/api/metrics"
	"github.com/traintrack/training-api/internal/core/domain"
	"github.com/traintrack/training-api/internal/core/ports"
	"github.com/traintrack/training-api/internal/token"
)

// AuthService implements registration, login, and logout.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	throttle ports.LoginThrottle
	issuer   *token.Issuer
	cost     int
	logger   zerolog.Logger
}

// NewAuthService wires the credential flows. throttle may be nil, in which
// case login attempts are not rate-limited. cost <= 0 falls back to the
// bcrypt default work factor.
func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionRepository,
	throttle ports.LoginThrottle,
	issuer *token.Issuer,
	cost int,
	logger zerolog.Logger,
) *AuthService {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:    users,
		sessions: sessions,
		throttle: throttle,
		issuer:   issuer,
		cost:     cost,
		logger:   logger,
	}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Settings:     domain.DefaultSettings(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and mints a bearer token. An unknown email
// and a wrong password fail identically with ErrInvalidCredentials so the
// response cannot be used to enumerate accounts. The session record is
// written before the token is handed back: no cookie without an audit row.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		allowed, err := s.throttle.Allow(ctx, email)
		if err != nil {
			// Throttle store being down must not lock everyone out.
			s.logger.Warn().Err(err).Msg("login throttle check failed, allowing attempt")
		} else if !allowed {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			s.recordFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	signed, expiresAt, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Token:     signed,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Time("expires_at", expiresAt).Msg("login succeeded")

	return &ports.LoginResult{Token: signed, ExpiresAt: expiresAt, User: user}, nil
}

func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	if tokenString == "" {
		return nil
	}
	return s.sessions.DeleteByToken(ctx, tokenString)
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	metrics.LoginsTotal.WithLabelValues("invalid").Inc()
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle record failed")
	}
}
