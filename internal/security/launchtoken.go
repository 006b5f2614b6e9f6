package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidLaunchToken is returned for expired, forged, or malformed tokens.
var ErrInvalidLaunchToken = errors.New("invalid launch token")

// LaunchClaims bind a spawned quiz process to the account and course it was
// launched for. The grade endpoint trusts these claims instead of an
// unauthenticated POST.
type LaunchClaims struct {
	AccountID int64  `json:"account_id"`
	Course    string `json:"course"`
	jwt.RegisteredClaims
}

// LaunchTokenIssuer signs and verifies launch tokens with an HMAC secret.
type LaunchTokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewLaunchTokenIssuer creates an issuer. ttl should cover the quiz time
// budget plus a grace period for submission.
func NewLaunchTokenIssuer(secret string, ttl time.Duration) *LaunchTokenIssuer {
	return &LaunchTokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token for one quiz launch.
func (i *LaunchTokenIssuer) Issue(accountID int64, course string) (string, error) {
	now := time.Now()
	claims := LaunchClaims{
		AccountID: accountID,
		Course:    course,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", accountID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign launch token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a launch token, returning its claims.
func (i *LaunchTokenIssuer) Verify(raw string) (*LaunchClaims, error) {
	claims := &LaunchClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidLaunchToken
	}
	return claims, nil
}
