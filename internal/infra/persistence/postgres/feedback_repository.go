package postgres

import (
	"context"

	"plantstore/internal/domain/entity"
	domainerrors "plantstore/internal/domain/errors"
	"plantstore/internal/domain/repository"
	"plantstore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// feedbackRepository implements the repository.FeedbackRepository interface.
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{
		db: db,
	}
}

// FindByID retrieves a feedback entry by its unique ID.
func (repo *feedbackRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	var feedbackM model.FeedbackModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&feedbackM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFeedbackNotFound
		}

		return nil, errors.Wrap(err, "failed to find feedback by ID")
	}

	return toFeedbackDomain(&feedbackM), nil
}

// FindAll retrieves every feedback entry with its author loaded, newest first.
func (repo *feedbackRepository) FindAll(ctx context.Context) ([]*entity.Feedback, error) {
	var feedbackModels []*model.FeedbackModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&feedbackModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	feedback := make([]*entity.Feedback, 0, len(feedbackModels))
	for _, feedbackM := range feedbackModels {
		feedback = append(feedback, toFeedbackDomain(feedbackM))
	}

	return feedback, nil
}

// Create persists a new feedback entry.
func (repo *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	feedbackM := fromFeedbackDomain(feedback)

	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback")
	}

	feedback.ID = feedbackM.ID
	feedback.AddedAt = feedbackM.CreatedAt

	return nil
}

// Delete removes a feedback entry by its ID.
func (repo *feedbackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FeedbackModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete feedback")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFeedbackNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toFeedbackDomain converts a GORM FeedbackModel to a domain Feedback entity.
func toFeedbackDomain(data *model.FeedbackModel) *entity.Feedback {
	if data == nil {
		return nil
	}

	return &entity.Feedback{
		ID:      data.ID,
		UserID:  data.UserID,
		Content: data.Content,
		Rating:  data.Rating,
		AddedAt: data.CreatedAt,
		User:    toUserDomain(data.User),
	}
}

// fromFeedbackDomain converts a domain Feedback entity to a GORM FeedbackModel.
func fromFeedbackDomain(data *entity.Feedback) *model.FeedbackModel {
	if data == nil {
		return nil
	}

	return &model.FeedbackModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Content:   data.Content,
		Rating:    data.Rating,
		CreatedAt: data.AddedAt,
	}
}
