package models

import "time"

// Account represents a registered learner.
type Account struct {
	ID           int64
	Username     string
	PasswordHash string
	Progress     int
	CreatedAt    time.Time
}

// Session represents an authenticated web session.
type Session struct {
	ID        string
	AccountID int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired checks if the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
