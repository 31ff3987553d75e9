package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a user-authored review with a short text and a 0-5 rating. It
// belongs to its author and is removed with the account.
type Feedback struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Content string
	Rating  int
	AddedAt time.Time
	User    *User // Author, loaded for serialization.
}

// IsAuthoredBy reports whether the given user wrote this entry.
func (f *Feedback) IsAuthoredBy(userID uuid.UUID) bool {
	return f.UserID == userID
}
