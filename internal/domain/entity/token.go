package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is a stored login session. Only the SHA-256 hash of the token
// string is persisted.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
