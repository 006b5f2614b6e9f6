package service

import (
	"errors"
	"os"
	"testing"
	"time"

	"learningplatform/internal/database"
	"learningplatform/internal/repository"
)

func newTestAuthService(t *testing.T) (*AuthService, func()) {
	t.Helper()

	dbPath := "test_auth_service.db"
	db, err := database.Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	svc := NewAuthService(repository.NewAccountRepository(db), time.Hour)
	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return svc, cleanup
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc, cleanup := newTestAuthService(t)
	defer cleanup()

	if _, err := svc.Register("alice", "password123"); err != nil {
		t.Fatalf("First registration failed: %v", err)
	}

	_, err := svc.Register("alice", "differentpass")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestRegisterValidatesInput(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc, cleanup := newTestAuthService(t)
	defer cleanup()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"short username", "ab", "password123"},
		{"short password", "charlie", "short"},
		{"username with spaces", " alice ", "password123"},
		{"empty username", "", "password123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(tt.username, tt.password); err == nil {
				t.Errorf("expected Register(%q, %q) to fail", tt.username, tt.password)
			}
		})
	}
}

func TestLoginDoesNotDistinguishFailureModes(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc, cleanup := newTestAuthService(t)
	defer cleanup()

	if _, err := svc.Register("bob", "password123"); err != nil {
		t.Fatalf("Registration failed: %v", err)
	}

	_, _, unknownErr := svc.Login("nobody", "password123")
	_, _, wrongPassErr := svc.Login("bob", "wrongpassword")

	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Errorf("unknown username: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongPassErr, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassErr)
	}
}

func TestLoginCreatesValidatableSession(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc, cleanup := newTestAuthService(t)
	defer cleanup()

	if _, err := svc.Register("carol", "password123"); err != nil {
		t.Fatalf("Registration failed: %v", err)
	}

	session, account, err := svc.Login("carol", "password123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if account.Username != "carol" {
		t.Errorf("expected account carol, got %s", account.Username)
	}

	got, err := svc.ValidateSession(session.ID)
	if err != nil {
		t.Fatalf("ValidateSession failed: %v", err)
	}
	if got.ID != account.ID {
		t.Errorf("expected account %d from session, got %d", account.ID, got.ID)
	}

	if err := svc.Logout(session.ID); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := svc.ValidateSession(session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after logout, got %v", err)
	}
}
