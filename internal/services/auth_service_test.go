package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/pawkeep/pawkeep-backend/internal/config"
	"github.com/pawkeep/pawkeep-backend/internal/dto"
	"github.com/pawkeep/pawkeep-backend/internal/services"
	"github.com/pawkeep/pawkeep-backend/internal/testutil"
)

func newAuthService(t *testing.T) *services.AuthService {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
	}
	return services.NewAuthService(testutil.DB(t), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{Username: "amy", Password: "correcthorse"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatalf("expected a token pair, got %+v", resp)
	}
	if resp.User.Username != "amy" {
		t.Fatalf("expected user echo, got %+v", resp.User)
	}

	if _, err := svc.Register(&dto.RegisterRequest{Username: "amy", Password: "correcthorse"}); !errors.Is(err, services.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	if _, err := svc.Login(&dto.LoginRequest{Username: "amy", Password: "correcthorse"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := svc.Login(&dto.LoginRequest{Username: "amy", Password: "wrong"}); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(&dto.LoginRequest{Username: "ghost", Password: "correcthorse"}); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	svc := newAuthService(t)

	initial, err := svc.Register(&dto.RegisterRequest{Username: "amy", Password: "correcthorse"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	rotated, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: initial.RefreshToken})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if rotated.RefreshToken == initial.RefreshToken {
		t.Fatalf("refresh must rotate the token")
	}

	// The consumed token is revoked.
	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: initial.RefreshToken}); !errors.Is(err, services.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for a consumed token, got %v", err)
	}

	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: "bogus"}); !errors.Is(err, services.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for an unknown token, got %v", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{Username: "amy", Password: "correcthorse"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken}); !errors.Is(err, services.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after logout, got %v", err)
	}
}
