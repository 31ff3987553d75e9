package repository

import (
	"context"
	"errors"

	"plantstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFeedbackNotFound is returned when a feedback entry does not exist.
var ErrFeedbackNotFound = errors.New("feedback not found")

// FeedbackRepository defines the operations for feedback persistence.
type FeedbackRepository interface {
	// FindByID retrieves a single feedback entry by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error)

	// FindAll retrieves every feedback entry with its author loaded, newest
	// first.
	FindAll(ctx context.Context) ([]*entity.Feedback, error)

	// Create persists a new feedback entry.
	Create(ctx context.Context, feedback *entity.Feedback) error

	// Delete removes a feedback entry.
	Delete(ctx context.Context, id uuid.UUID) error
}
