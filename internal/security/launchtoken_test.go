package security

import (
	"testing"
	"time"
)

func TestLaunchTokenRoundTrip(t *testing.T) {
	issuer := NewLaunchTokenIssuer("test-secret", 15*time.Minute)

	token, err := issuer.Issue(42, "python")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty token")
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.AccountID != 42 {
		t.Errorf("AccountID = %d, want 42", claims.AccountID)
	}
	if claims.Course != "python" {
		t.Errorf("Course = %q, want %q", claims.Course, "python")
	}
}

func TestLaunchTokenVerifyFailures(t *testing.T) {
	issuer := NewLaunchTokenIssuer("test-secret", 15*time.Minute)

	expired := NewLaunchTokenIssuer("test-secret", -1*time.Minute)
	expiredToken, err := expired.Issue(1, "web")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	otherIssuer := NewLaunchTokenIssuer("other-secret", 15*time.Minute)
	forged, err := otherIssuer.Issue(1, "web")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "malformed token",
			token: "not.a.jwt",
		},
		{
			name:  "expired token",
			token: expiredToken,
		},
		{
			name:  "wrong secret",
			token: forged,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := issuer.Verify(tt.token); err != ErrInvalidLaunchToken {
				t.Errorf("Verify() error = %v, want ErrInvalidLaunchToken", err)
			}
		})
	}
}
