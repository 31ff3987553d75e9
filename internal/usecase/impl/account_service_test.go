package impl

import (
	"context"
	"testing"
	"time"

	"plantstore/internal/domain/entity"
	domainerrors "plantstore/internal/domain/errors"
	"plantstore/internal/domain/repository"
	"plantstore/internal/domain/service"
	mockRepo "plantstore/internal/mocks/repository"
	mockSvc "plantstore/internal/mocks/service"
	"plantstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service          usecase.AccountUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAccountService(AccountServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Logger:           newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:          service,
		txManager:        txManager,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

func TestAccountService_Signup_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Name:      "Test User",
		Email:     "test@Example.COM",
		Password1: "correct horse battery",
		Password2: "correct horse battery",
	}

	fx.hasher.EXPECT().Hash(input.Password1).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			mockCartRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Cart")).
				Run(func(ctx context.Context, cart *entity.Cart) {
					assert.NotEqual(t, uuid.Nil, cart.UserID, "cart must belong to the created user")
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	user, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Test User", user.Name)
	assert.Equal(t, "test@example.com", user.Email, "email domain must be normalized")
	assert.Equal(t, "hashed_password", user.PasswordHash)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsStaff)
	assert.False(t, user.IsSuperuser)
}

func TestAccountService_Signup_CollectsAllViolations(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Name:      "ab",
		Email:     "",
		Password1: "1234567",
		Password2: "different",
	}

	user, err := fx.service.Signup(ctx, input)

	assert.Nil(t, user)
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Violations(), "The name cannot be empty or contain fewer than 3 characters.")
	assert.Contains(t, validationErr.Violations(), "You haven't provided a valid email address.")
	assert.Contains(t, validationErr.Violations(), "The two password fields didn't match.")
	assert.Contains(t, validationErr.Violations(), "This password is too short. It must contain at least 8 characters.")
}

func TestAccountService_Signup_EmailTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Name:      "Test User",
		Email:     "taken@example.com",
		Password1: "correct horse battery",
		Password2: "correct horse battery",
	}

	fx.hasher.EXPECT().Hash(input.Password1).Return("hashed_password", nil)

	expectedErr := domainerrors.NewValidationError("A user with that email address already exists.")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(repository.ErrEmailTaken)

			_ = fn(mockFactory)
		}).
		Return(expectedErr)

	user, err := fx.service.Signup(ctx, input)

	assert.Nil(t, user)
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Violations(), "A user with that email address already exists.")
}

func TestAccountService_CreateSuperuser_SetsRoleFlags(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Name:     "Shop Admin",
		Email:    "admin@example.com",
		Password: "correct horse battery",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)
			mockCartRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Cart")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	user, err := fx.service.CreateSuperuser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, user.IsStaff)
	assert.True(t, user.IsSuperuser)
	assert.Equal(t, entity.Roles{entity.RoleStaff}, user.Roles())
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Name:         "Test User",
		PasswordHash: "hashed_password",
		IsActive:     true,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("correct horse battery", "hashed_password").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, []string{"customer"}).
		Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_token_hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, user.ID, token.UserID)
			assert.Equal(t, "refresh_token_hash", token.TokenHash)
			assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), token.ExpiresAt, time.Minute)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "test@Example.com",
		Password: "correct horse battery",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever else",
	})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		IsActive:     true,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong password", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "wrong password",
	})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_InactiveAccount(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		IsActive:     false,
	}

	// The password is never checked for a deactivated account.
	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "correct horse battery",
	})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_RefreshToken_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), IsStaff: true, IsActive: true}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh_token").
		Return(&service.TokenClaims{UserID: user.ID}, nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_token_hash")
	fx.refreshTokenRepo.EXPECT().
		FindByHash(ctx, "refresh_token_hash").
		Return(&entity.RefreshToken{UserID: user.ID, TokenHash: "refresh_token_hash"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, []string{"staff"}).
		Return("new_access_token", "unused_refresh_token", nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh_token"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "new_access_token", output.AccessToken)
}

func TestAccountService_RefreshToken_NotStored(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh_token").
		Return(&service.TokenClaims{UserID: userID}, nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_token_hash")
	fx.refreshTokenRepo.EXPECT().
		FindByHash(ctx, "refresh_token_hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh_token"})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAccountService_RefreshToken_Expired(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh_token").
		Return(&service.TokenClaims{UserID: userID}, nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_token_hash")
	fx.refreshTokenRepo.EXPECT().
		FindByHash(ctx, "refresh_token_hash").
		Return(nil, repository.ErrRefreshTokenExpired)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh_token"})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAccountService_Logout_DeletesStoredSession(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh_token").
		Return(&service.TokenClaims{UserID: userID}, nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_token_hash")
	fx.refreshTokenRepo.EXPECT().DeleteByHash(ctx, "refresh_token_hash").Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh_token"})

	assert.NoError(t, err)
}

func TestAccountService_Logout_InvalidTokenStillDeleted(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))
	fx.tokenService.EXPECT().HashToken("garbage").Return("garbage_hash")
	fx.refreshTokenRepo.EXPECT().DeleteByHash(ctx, "garbage_hash").Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "garbage"})

	assert.NoError(t, err)
}
