// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"plantstore/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account. The
// password is supplied twice and must match.
type SignupInput struct {
	Name      string
	Email     string
	Password1 string
	Password2 string
}

// CreateUserInput defines the data required to create an account directly,
// without the signup confirmation step.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token presented for renewal.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token of the session being ended.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the renewed access token. The refresh token
// itself is never rotated.
type RefreshTokenOutput struct {
	AccessToken string
}

// AccountUsecase defines the interface for account-related business
// operations. Every account creation path also creates the user's empty cart
// atomically, so no user ever exists without one.
type AccountUsecase interface {
	// Signup validates the registration input (including password
	// confirmation and strength) and creates a regular account.
	Signup(ctx context.Context, input *SignupInput) (*entity.User, error)

	// CreateRegularUser creates an account with regular role flags.
	CreateRegularUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// CreateSuperuser creates an account with staff and superuser flags set.
	CreateSuperuser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// Login checks credentials and issues an access/refresh token pair.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RefreshToken issues a new access token for a valid, stored refresh token.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)

	// Logout deletes the stored session of the presented refresh token.
	Logout(ctx context.Context, input *LogoutInput) error
}
