package impl

import (
	"context"
	"testing"

	"plantstore/internal/domain/entity"
	domainerrors "plantstore/internal/domain/errors"
	"plantstore/internal/domain/repository"
	mockRepo "plantstore/internal/mocks/repository"
	"plantstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// feedbackServiceFixtures holds all test dependencies for feedback service tests.
type feedbackServiceFixtures struct {
	service      usecase.FeedbackUsecase
	feedbackRepo *mockRepo.MockFeedbackRepository
}

func createTestFeedbackService(t *testing.T) feedbackServiceFixtures {
	feedbackRepo := mockRepo.NewMockFeedbackRepository(t)

	service := NewFeedbackService(FeedbackServiceParams{
		FeedbackRepo: feedbackRepo,
		Logger:       newDiscardLogger(),
	})

	return feedbackServiceFixtures{
		service:      service,
		feedbackRepo: feedbackRepo,
	}
}

func TestFeedbackService_ListFeedback_MarksViewerEntries(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	otherID := uuid.New()

	feedback := []*entity.Feedback{
		{ID: uuid.New(), UserID: viewerID, Content: "Lovely plants, fast delivery."},
		{ID: uuid.New(), UserID: otherID, Content: "The ficus arrived a bit bruised."},
	}

	fx.feedbackRepo.EXPECT().FindAll(ctx).Return(feedback, nil)

	views, err := fx.service.ListFeedback(ctx, &viewerID)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.True(t, views[0].IsCurrentUser)
	assert.False(t, views[1].IsCurrentUser)
}

func TestFeedbackService_ListFeedback_AnonymousViewerOwnsNothing(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	feedback := []*entity.Feedback{
		{ID: uuid.New(), UserID: uuid.New(), Content: "Lovely plants, fast delivery."},
	}

	fx.feedbackRepo.EXPECT().FindAll(ctx).Return(feedback, nil)

	views, err := fx.service.ListFeedback(ctx, nil)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.False(t, views[0].IsCurrentUser)
}

func TestFeedbackService_ListFeedback_Empty(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	fx.feedbackRepo.EXPECT().FindAll(ctx).Return(nil, nil)

	views, err := fx.service.ListFeedback(ctx, nil)

	assert.Nil(t, views)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNoFeedbackFound))
}

func TestFeedbackService_CreateFeedback_TrimsContent(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	authorID := uuid.New()
	input := &usecase.CreateFeedbackInput{
		Content: "  The monstera doubled in size within a month.  ",
		Rating:  5,
	}

	feedbackID := uuid.New()
	fx.feedbackRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Feedback")).
		Run(func(ctx context.Context, feedback *entity.Feedback) {
			feedback.ID = feedbackID
		}).
		Return(nil)
	fx.feedbackRepo.EXPECT().
		FindByID(ctx, feedbackID).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
			return &entity.Feedback{
				ID:      id,
				UserID:  authorID,
				Content: "The monstera doubled in size within a month.",
				Rating:  5,
				User:    &entity.User{ID: authorID, Name: "Alice"},
			}, nil
		})

	feedback, err := fx.service.CreateFeedback(ctx, authorID, input)

	require.NoError(t, err)
	require.NotNil(t, feedback)
	assert.Equal(t, authorID, feedback.UserID)
	assert.Equal(t, "The monstera doubled in size within a month.", feedback.Content)
	assert.Equal(t, 5, feedback.Rating)

	// The created entry comes back with its author loaded, so the
	// serialized user_name is never empty.
	require.NotNil(t, feedback.User)
	assert.Equal(t, "Alice", feedback.User.Name)
}

func TestFeedbackService_CreateFeedback_CollectsAllViolations(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	input := &usecase.CreateFeedbackInput{
		Content: "too short",
		Rating:  6,
	}

	feedback, err := fx.service.CreateFeedback(ctx, uuid.New(), input)

	assert.Nil(t, feedback)
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Violations(), "The content field must include between 20 and 800 characters.")
	assert.Contains(t, validationErr.Violations(), "The rating field must be between 0 and 5 (inclusive).")
}

func TestFeedbackService_DeleteFeedback_AuthorOnly(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	authorID := uuid.New()
	feedback := &entity.Feedback{ID: uuid.New(), UserID: authorID}

	fx.feedbackRepo.EXPECT().FindByID(ctx, feedback.ID).Return(feedback, nil)
	fx.feedbackRepo.EXPECT().Delete(ctx, feedback.ID).Return(nil)

	err := fx.service.DeleteFeedback(ctx, authorID, feedback.ID)

	assert.NoError(t, err)
}

func TestFeedbackService_DeleteFeedback_OtherUserForbidden(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	feedback := &entity.Feedback{ID: uuid.New(), UserID: uuid.New()}

	fx.feedbackRepo.EXPECT().FindByID(ctx, feedback.ID).Return(feedback, nil)

	err := fx.service.DeleteFeedback(ctx, uuid.New(), feedback.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestFeedbackService_DeleteFeedback_NotFound(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	feedbackID := uuid.New()

	fx.feedbackRepo.EXPECT().FindByID(ctx, feedbackID).Return(nil, repository.ErrFeedbackNotFound)

	err := fx.service.DeleteFeedback(ctx, uuid.New(), feedbackID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFeedbackNotFound))
}
