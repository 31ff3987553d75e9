package usecase

import (
	"context"

	"plantstore/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateFeedbackInput defines the data required to leave a review. The
// author is always the authenticated principal, never part of the input.
type CreateFeedbackInput struct {
	Content string
	Rating  int
}

// FeedbackView is a feedback entry annotated for a specific viewer.
type FeedbackView struct {
	Feedback      *entity.Feedback
	IsCurrentUser bool // Whether the viewer authored this entry. Always false for anonymous viewers.
}

// FeedbackUsecase defines the interface for review operations.
type FeedbackUsecase interface {
	// ListFeedback returns every entry annotated for the viewer, who may be
	// nil (anonymous). An empty collection is reported as not found, the
	// same empty-as-absent convention as the catalog listing.
	ListFeedback(ctx context.Context, viewer *uuid.UUID) ([]*FeedbackView, error)

	// CreateFeedback validates and persists a review authored by the given
	// user.
	CreateFeedback(ctx context.Context, authorID uuid.UUID, input *CreateFeedbackInput) (*entity.Feedback, error)

	// DeleteFeedback removes an entry. Only the author may delete it.
	DeleteFeedback(ctx context.Context, requesterID, id uuid.UUID) error
}
