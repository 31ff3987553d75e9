package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims is the identity a validated token carries.
type TokenClaims struct {
	UserID uuid.UUID
	Roles  []string
}

// TokenService abstracts the issuing and validation of authentication tokens.
type TokenService interface {
	// GenerateTokens creates a new access and refresh token pair for a user.
	// Roles are embedded in the access token only.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(token string) (*TokenClaims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(token string) (*TokenClaims, error)

	// HashToken returns the hash under which a refresh token is persisted.
	HashToken(token string) string

	// RefreshTokenDuration returns the lifetime of issued refresh tokens.
	RefreshTokenDuration() time.Duration
}
