package repository

import (
	"context"
	"errors"

	"plantstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a stored session does not exist.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// ErrRefreshTokenExpired is returned when a stored session has passed its
// expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// RefreshTokenRepository defines the operations for login session persistence.
type RefreshTokenRepository interface {
	// Create persists a new refresh token, representing a login session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash retrieves a stored session by the token's SHA-256 hash.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByHash removes a stored session by the token's SHA-256 hash.
	DeleteByHash(ctx context.Context, tokenHash string) error

	// DeleteByUserID removes every stored session of a user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
