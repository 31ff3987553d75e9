// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "plantstore/internal/delivery/context"
	"plantstore/internal/domain/entity"
	domainerrors "plantstore/internal/domain/errors"
	"plantstore/internal/domain/repository"
	"plantstore/internal/domain/service"
	"plantstore/internal/domain/validation"
	"plantstore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup validates the full registration input and creates a regular account
// with its cart. Every violated rule ends up in one flat error list.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	var v validation.Violations
	name, email := validation.Account(input.Name, input.Email, &v)
	validation.PasswordsMatch(input.Password1, input.Password2, &v)
	validation.Password(input.Password1, name, email, &v)
	if err := v.Err(); err != nil {
		srv.log(ctx).Warn("Signup validation failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	return srv.createAccount(ctx, name, email, input.Password1, roleFlags{})
}

// CreateRegularUser creates an account with regular role flags.
func (srv *accountService) CreateRegularUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	return srv.createValidated(ctx, input, roleFlags{})
}

// CreateSuperuser creates an account with the staff and superuser flags set.
func (srv *accountService) CreateSuperuser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	return srv.createValidated(ctx, input, roleFlags{staff: true, superuser: true})
}

// roleFlags is the explicit role classification passed to the single account
// constructor. The zero value is a regular user.
type roleFlags struct {
	staff     bool
	superuser bool
}

func (srv *accountService) createValidated(ctx context.Context, input *usecase.CreateUserInput, flags roleFlags) (*entity.User, error) {
	var v validation.Violations
	name, email := validation.Account(input.Name, input.Email, &v)
	validation.Password(input.Password, name, email, &v)
	if err := v.Err(); err != nil {
		srv.log(ctx).Warn("Account validation failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	return srv.createAccount(ctx, name, email, input.Password, flags)
}

// createAccount persists the user and their empty cart in one transaction, so
// no account can exist without a cart.
func (srv *accountService) createAccount(ctx context.Context, name, email, password string, flags roleFlags) (*entity.User, error) {
	hashedPassword, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during account creation", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	newUser := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		IsStaff:      flags.staff,
		IsSuperuser:  flags.superuser,
		IsActive:     true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return domainerrors.NewValidationError("A user with that email address already exists.")
			}

			return errors.Wrap(err, "failed to create user")
		}

		newCart := &entity.Cart{UserID: newUser.ID}
		if err := repoFactory.CartRepo().Create(ctx, newCart); err != nil {
			return errors.Wrap(err, "failed to create cart for new user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute account creation transaction", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Account created", slog.Any("userID", newUser.ID), slog.Bool("staff", flags.staff))

	return newUser, nil
}

// Login checks credentials and issues a new token pair. The bcrypt check runs
// outside any transaction since it is CPU-bound.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, validation.NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !user.IsActive || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	newRefreshToken := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.Create(ctx, newRefreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token during login")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         user,
	}, nil
}

// RefreshToken issues a new access token for a stored, unexpired refresh
// token. The refresh token itself remains unchanged.
func (srv *accountService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Debug("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	if _, err := srv.refreshTokenRepo.FindByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found or expired")
		}

		return nil, errors.Wrap(err, "failed to look up refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user for token refresh")
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout deletes the stored session of the presented refresh token. An
// invalid token is still deleted by hash, so logout never fails the caller
// over token state.
func (srv *accountService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if _, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err != nil {
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	if err := srv.refreshTokenRepo.DeleteByHash(ctx, tokenHash); err != nil {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}
