package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "plantstore/internal/delivery/context"
	"plantstore/internal/domain/entity"
	domainerrors "plantstore/internal/domain/errors"
	"plantstore/internal/domain/repository"
	"plantstore/internal/domain/validation"
	"plantstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// feedbackService implements the FeedbackUsecase interface.
type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	logger       *slog.Logger
}

// FeedbackServiceParams holds dependencies for FeedbackService, injected by Fx.
type FeedbackServiceParams struct {
	fx.In

	FeedbackRepo repository.FeedbackRepository
	Logger       *slog.Logger
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(params FeedbackServiceParams) usecase.FeedbackUsecase {
	return &feedbackService{
		feedbackRepo: params.FeedbackRepo,
		logger:       params.Logger,
	}
}

func (srv *feedbackService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListFeedback returns all feedback entries, newest first. The optional
// viewer marks which entries the viewer authored; an anonymous viewer owns
// none. No feedback at all is reported as ErrNoFeedbackFound.
func (srv *feedbackService) ListFeedback(ctx context.Context, viewer *uuid.UUID) ([]*usecase.FeedbackView, error) {
	feedback, err := srv.feedbackRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}
	if len(feedback) == 0 {
		return nil, errors.Wrap(domainerrors.ErrNoFeedbackFound, "no feedback yet")
	}

	views := make([]*usecase.FeedbackView, 0, len(feedback))
	for _, entry := range feedback {
		views = append(views, &usecase.FeedbackView{
			Feedback:      entry,
			IsCurrentUser: viewer != nil && entry.IsAuthoredBy(*viewer),
		})
	}

	return views, nil
}

// CreateFeedback validates and stores a new feedback entry for the author.
func (srv *feedbackService) CreateFeedback(ctx context.Context, authorID uuid.UUID, input *usecase.CreateFeedbackInput) (*entity.Feedback, error) {
	var v validation.Violations
	validation.FeedbackFields(input.Content, input.Rating, &v)
	if err := v.Err(); err != nil {
		srv.log(ctx).Warn("Feedback validation failed", slog.Any("authorID", authorID), slog.Any("error", err))

		return nil, err
	}

	feedback := &entity.Feedback{
		UserID:  authorID,
		Content: strings.TrimSpace(input.Content),
		Rating:  input.Rating,
	}
	if err := srv.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, errors.Wrap(err, "failed to create feedback")
	}

	srv.log(ctx).Debug("Feedback created", slog.Any("feedbackID", feedback.ID))

	// Re-read the entry so the author is loaded for serialization.
	created, err := srv.feedbackRepo.FindByID(ctx, feedback.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load created feedback")
	}

	return created, nil
}

// DeleteFeedback removes a feedback entry. Only the author may delete their
// own entry; anyone else gets ErrForbidden even when they are staff.
func (srv *feedbackService) DeleteFeedback(ctx context.Context, requesterID, feedbackID uuid.UUID) error {
	feedback, err := srv.feedbackRepo.FindByID(ctx, feedbackID)
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return errors.Wrap(domainerrors.ErrFeedbackNotFound, "feedback does not exist")
		}

		return errors.Wrap(err, "failed to find feedback")
	}

	if !feedback.IsAuthoredBy(requesterID) {
		srv.log(ctx).Warn("Feedback delete denied",
			slog.Any("feedbackID", feedbackID), slog.Any("requesterID", requesterID))

		return errors.Wrap(domainerrors.ErrForbidden, "feedback belongs to another user")
	}

	if err := srv.feedbackRepo.Delete(ctx, feedbackID); err != nil {
		return errors.Wrap(err, "failed to delete feedback")
	}

	return nil
}
