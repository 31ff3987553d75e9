package handler

import (
	"log/slog"
	"net/http"
	"time"

	"plantstore/internal/delivery/http/middleware"
	"plantstore/internal/delivery/http/response"
	domainerrors "plantstore/internal/domain/errors"
	"plantstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FeedbackHandlerParams holds dependencies for FeedbackHandler, injected by Fx.
type FeedbackHandlerParams struct {
	fx.In

	FeedbackUC usecase.FeedbackUsecase
	Logger     *slog.Logger
}

// FeedbackHandler holds dependencies for feedback-related handlers.
type FeedbackHandler struct {
	feedbackUC usecase.FeedbackUsecase
	logger     *slog.Logger
}

// NewFeedbackHandler is the constructor for FeedbackHandler.
func NewFeedbackHandler(params FeedbackHandlerParams) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUC: params.FeedbackUC,
		logger:     params.Logger,
	}
}

// CreateFeedbackRequest represents the request body for leaving a review.
type CreateFeedbackRequest struct {
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// FeedbackResponse is a serialized review. is_current_user marks entries the
// requesting viewer authored; it is always false for anonymous viewers.
type FeedbackResponse struct {
	ID            uuid.UUID `json:"id"`
	UserName      string    `json:"user_name"`
	Content       string    `json:"content"`
	Rating        int       `json:"rating"`
	AddedAt       time.Time `json:"added_at"`
	IsCurrentUser bool      `json:"is_current_user"`
}

// ListFeedback handles the feedback listing request. The viewer is optional;
// authentication only affects the is_current_user annotation.
func (h *FeedbackHandler) ListFeedback(c echo.Context) error {
	var viewer *uuid.UUID
	if userID, ok := middleware.UserID(c); ok {
		viewer = &userID
	}

	views, err := h.feedbackUC.ListFeedback(c.Request().Context(), viewer)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toFeedbackResponses(views), "Feedback retrieved successfully")
}

// CreateFeedback handles leaving a review. The author is always the
// authenticated principal.
func (h *FeedbackHandler) CreateFeedback(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	var req CreateFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feedback input")
	}

	feedback, err := h.feedbackUC.CreateFeedback(c.Request().Context(), userID, &usecase.CreateFeedbackInput{
		Content: req.Content,
		Rating:  req.Rating,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	view := &usecase.FeedbackView{Feedback: feedback, IsCurrentUser: true}

	return response.Success(c, http.StatusCreated, toFeedbackResponse(view), "Feedback created successfully")
}

// DeleteFeedback handles removing a review. Only the author may delete it.
func (h *FeedbackHandler) DeleteFeedback(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	feedbackID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "FEEDBACK_NOT_FOUND", "Feedback not found.")
	}

	if err := h.feedbackUC.DeleteFeedback(c.Request().Context(), userID, feedbackID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

func toFeedbackResponse(view *usecase.FeedbackView) FeedbackResponse {
	resp := FeedbackResponse{
		ID:            view.Feedback.ID,
		Content:       view.Feedback.Content,
		Rating:        view.Feedback.Rating,
		AddedAt:       view.Feedback.AddedAt,
		IsCurrentUser: view.IsCurrentUser,
	}
	if view.Feedback.User != nil {
		resp.UserName = view.Feedback.User.Name
	}

	return resp
}

func toFeedbackResponses(views []*usecase.FeedbackView) []FeedbackResponse {
	responses := make([]FeedbackResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, toFeedbackResponse(view))
	}

	return responses
}
