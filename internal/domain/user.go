package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. Mood entries and scheduler state are per-user.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Role         UserRole
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken is a stored, hashed refresh token. The raw token is returned
// to the client once and never persisted.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the token is past its expiry at the given instant.
func (t RefreshToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
