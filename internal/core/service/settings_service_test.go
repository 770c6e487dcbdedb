package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/traintrack/training-api/internal/core/domain"
	"github.com/traintrack/training-api/internal/core/ports"
)

func TestSettingsService_Get_MergesProfileAndPreferences(t *testing.T) {
	users := newStubUserRepo()
	users.byEmail["alice@example.com"] = &domain.User{
		ID:    "user-1",
		Name:  "Alice",
		Email: "alice@example.com",
		Settings: domain.Settings{
			Notifications: false,
			Theme:         "dark",
		},
	}
	svc := NewSettingsService(users, zerolog.Nop())

	settings, err := svc.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	want := ports.UserSettings{Name: "Alice", Email: "alice@example.com", Notifications: false, Theme: "dark"}
	if *settings != want {
		t.Fatalf("expected %+v, got %+v", want, *settings)
	}
}

func TestSettingsService_Get_DefaultsWhenUnset(t *testing.T) {
	users := newStubUserRepo()
	users.byEmail["alice@example.com"] = &domain.User{
		ID:    "user-1",
		Name:  "Alice",
		Email: "alice@example.com",
	}
	svc := NewSettingsService(users, zerolog.Nop())

	settings, err := svc.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if !settings.Notifications || settings.Theme != "light" {
		t.Fatalf("expected defaults notifications=true theme=light, got %+v", settings)
	}
}

func TestSettingsService_Get_UnknownUser(t *testing.T) {
	svc := NewSettingsService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.Get(context.Background(), "ghost"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSettingsService_UpdateThenGetRoundTrips(t *testing.T) {
	users := newStubUserRepo()
	users.byEmail["a@x.com"] = &domain.User{ID: "user-1", Name: "Old", Email: "old@x.com"}
	svc := NewSettingsService(users, zerolog.Nop())

	in := ports.UserSettings{Name: "A", Email: "a@x.com", Notifications: false, Theme: "dark"}
	if err := svc.Update(context.Background(), "user-1", in); err != nil {
		t.Fatalf("update: %v", err)
	}

	out, err := svc.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if *out != in {
		t.Fatalf("round-trip mismatch: put %+v, got %+v", in, *out)
	}
}
