package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"sphere/internal/domain/entity"
	domainerrors "sphere/internal/domain/errors"
	"sphere/internal/domain/repository"
	"sphere/internal/domain/service"
	mockRepo "sphere/internal/mocks/repository"
	mockSvc "sphere/internal/mocks/service"
	"sphere/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func activeTestUser() *entity.User {
	return &entity.User{
		ID:           42,
		Username:     "jdoe",
		Name:         "John",
		LastName:     "Doe",
		PasswordHash: "stored-hash",
		Status:       entity.StatusActive,
		Verified:     "Y",
		RoleID:       1,
		Role:         &entity.Role{ID: 1, Name: "Admin"},
	}
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser()

	fx.userRepo.EXPECT().
		FindOne(ctx, repository.UserProbe{Username: "jdoe"}).
		Return(user, nil)
	fx.hasher.EXPECT().Verify("secret", "stored-hash").Return(true)
	fx.tokenService.EXPECT().
		Generate(service.Identity{
			ID:       42,
			Username: "jdoe",
			Name:     "John",
			LastName: "Doe",
			Role:     "Admin",
			Status:   "Active",
		}).
		Return("signed-token", nil)

	output, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Username: "jdoe",
		Password: "secret",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, int64(42), output.User.ID)
	assert.Equal(t, "jdoe", output.User.Username)
	assert.Equal(t, "Admin", output.User.RoleName)
}

func TestAuthService_Authenticate_EmptyInput(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.AuthenticateInput
	}{
		{name: "empty username", input: &usecase.AuthenticateInput{Username: "", Password: "secret"}},
		{name: "blank username", input: &usecase.AuthenticateInput{Username: "   ", Password: "secret"}},
		{name: "empty password", input: &usecase.AuthenticateInput{Username: "jdoe", Password: ""}},
		{name: "both empty", input: &usecase.AuthenticateInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := fx.service.Authenticate(ctx, tt.input)

			require.Error(t, err)
			assert.Nil(t, output)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentialsInput)
		})
	}
}

func TestAuthService_Authenticate_UnknownUsername(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindOne(ctx, repository.UserProbe{Username: "ghost"}).
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Username: "ghost",
		Password: "secret",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser()

	fx.userRepo.EXPECT().
		FindOne(ctx, repository.UserProbe{Username: "jdoe"}).
		Return(user, nil)
	fx.hasher.EXPECT().Verify("wrong", "stored-hash").Return(false)

	output, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Username: "jdoe",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
}

// An unknown username and a wrong password must be indistinguishable: same
// sentinel, same user-facing message.
func TestAuthService_Authenticate_FailureIndistinguishable(t *testing.T) {
	ctx := context.Background()

	unknownFx := createTestAuthService(t)
	unknownFx.userRepo.EXPECT().
		FindOne(ctx, repository.UserProbe{Username: "ghost"}).
		Return(nil, repository.ErrUserNotFound)

	_, unknownErr := unknownFx.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Username: "ghost",
		Password: "secret",
	})

	wrongFx := createTestAuthService(t)
	wrongFx.userRepo.EXPECT().
		FindOne(ctx, repository.UserProbe{Username: "jdoe"}).
		Return(activeTestUser(), nil)
	wrongFx.hasher.EXPECT().Verify("wrong", "stored-hash").Return(false)

	_, wrongErr := wrongFx.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Username: "jdoe",
		Password: "wrong",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)

	var unknownApp, wrongApp domainerrors.AppError
	require.ErrorAs(t, unknownErr, &unknownApp)
	require.ErrorAs(t, wrongErr, &wrongApp)
	assert.Equal(t, unknownApp.Message(), wrongApp.Message())
	assert.Equal(t, unknownApp.ErrorCode(), wrongApp.ErrorCode())
	assert.Equal(t, unknownApp.HTTPCode(), wrongApp.HTTPCode())
}

func TestAuthService_Authenticate_EmptyStoredHash(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser()
	user.PasswordHash = ""

	fx.userRepo.EXPECT().
		FindOne(ctx, repository.UserProbe{Username: "jdoe"}).
		Return(user, nil)

	output, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Username: "jdoe",
		Password: "secret",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
}

func TestAuthService_Authenticate_DisabledAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser()
	user.Status = entity.StatusInactive

	fx.userRepo.EXPECT().
		FindOne(ctx, repository.UserProbe{Username: "jdoe"}).
		Return(user, nil)
	fx.hasher.EXPECT().Verify("secret", "stored-hash").Return(true)

	output, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Username: "jdoe",
		Password: "secret",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
	assert.NotErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
}

func TestAuthService_Authenticate_RepositoryFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindOne(ctx, repository.UserProbe{Username: "jdoe"}).
		Return(nil, errors.New("connection refused"))

	output, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Username: "jdoe",
		Password: "secret",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
	// The driver detail stays in the log, never in the returned error.
	assert.NotContains(t, err.Error(), "connection refused")
}

func TestAuthService_Authenticate_TokenGenerationFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser()

	fx.userRepo.EXPECT().
		FindOne(ctx, repository.UserProbe{Username: "jdoe"}).
		Return(user, nil)
	fx.hasher.EXPECT().Verify("secret", "stored-hash").Return(true)
	fx.tokenService.EXPECT().
		Generate(service.Identity{
			ID:       42,
			Username: "jdoe",
			Name:     "John",
			LastName: "Doe",
			Role:     "Admin",
			Status:   "Active",
		}).
		Return("", errors.New("signing failed"))

	output, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Username: "jdoe",
		Password: "secret",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestAuthService_Authenticate_TrimsUsername(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser()

	fx.userRepo.EXPECT().
		FindOne(ctx, repository.UserProbe{Username: "jdoe"}).
		Return(user, nil)
	fx.hasher.EXPECT().Verify("secret", "stored-hash").Return(true)
	fx.tokenService.EXPECT().
		Generate(service.Identity{
			ID:       42,
			Username: "jdoe",
			Name:     "John",
			LastName: "Doe",
			Role:     "Admin",
			Status:   "Active",
		}).
		Return("signed-token", nil)

	output, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Username: "  jdoe  ",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
}
