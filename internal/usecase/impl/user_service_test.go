package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"sphere/internal/domain/entity"
	domainerrors "sphere/internal/domain/errors"
	"sphere/internal/domain/repository"
	mockRepo "sphere/internal/mocks/repository"
	mockSvc "sphere/internal/mocks/service"
	"sphere/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    logger,
	})

	return userServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
	}
}

func TestUserService_CreateUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Username: "jdoe",
		Name:     "John",
		LastName: "Doe",
		Password: "secret",
		Verified: "N",
		RoleID:   2,
	}

	fx.hasher.EXPECT().Hash("secret").Return("hashed-secret")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRoleRepo := mockRepo.NewMockRoleRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewRoleRepository().Return(mockRoleRepo)

			mockRoleRepo.EXPECT().
				FindOne(ctx, repository.RoleProbe{ID: 2}).
				Return(&entity.Role{ID: 2, Name: "User"}, nil)

			mockUserRepo.EXPECT().
				FindOne(ctx, repository.UserProbe{Username: "jdoe"}).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "hashed-secret", user.PasswordHash)
					assert.Equal(t, entity.StatusActive, user.Status)
					user.ID = 7
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(&entity.User{
			ID:       7,
			Username: "jdoe",
			Name:     "John",
			LastName: "Doe",
			Status:   entity.StatusActive,
			Verified: "N",
			RoleID:   2,
			Role:     &entity.Role{ID: 2, Name: "User"},
		}, nil)

	output, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(7), output.ID)
	assert.Equal(t, "jdoe", output.Username)
	assert.Equal(t, "User", output.RoleName)
	assert.Equal(t, "Active", output.Status)
}

func TestUserService_CreateUser_DuplicateUsername(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Username: "jdoe",
		Password: "secret",
		RoleID:   2,
	}

	fx.hasher.EXPECT().Hash("secret").Return("hashed-secret")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRoleRepo := mockRepo.NewMockRoleRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewRoleRepository().Return(mockRoleRepo)

			mockRoleRepo.EXPECT().
				FindOne(ctx, repository.RoleProbe{ID: 2}).
				Return(&entity.Role{ID: 2, Name: "User"}, nil)

			mockUserRepo.EXPECT().
				FindOne(ctx, repository.UserProbe{Username: "jdoe"}).
				Return(&entity.User{ID: 3, Username: "jdoe"}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.CreateUser(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_CreateUser_UnknownRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Username: "jdoe",
		Password: "secret",
		RoleID:   99,
	}

	fx.hasher.EXPECT().Hash("secret").Return("hashed-secret")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRoleRepo := mockRepo.NewMockRoleRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewRoleRepository().Return(mockRoleRepo)

			mockRoleRepo.EXPECT().
				FindOne(ctx, repository.RoleProbe{ID: 99}).
				Return(nil, repository.ErrRoleNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.CreateUser(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRoleNotFound)
}

func TestUserService_CreateUser_MissingFields(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.CreateUserInput
	}{
		{name: "no username", input: &usecase.CreateUserInput{Password: "secret", RoleID: 1}},
		{name: "no password", input: &usecase.CreateUserInput{Username: "jdoe", RoleID: 1}},
		{name: "no role", input: &usecase.CreateUserInput{Username: "jdoe", Password: "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := fx.service.CreateUser(ctx, tt.input)

			require.Error(t, err)
			assert.Nil(t, output)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestUserService_UpdateUser_RotatesPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.UpdateUserInput{
		ID:       7,
		Password: "new-secret",
	}

	fx.hasher.EXPECT().Hash("new-secret").Return("new-hash")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, int64(7)).
				Return(&entity.User{
					ID:           7,
					Username:     "jdoe",
					PasswordHash: "old-hash",
					Status:       entity.StatusActive,
					RoleID:       2,
				}, nil)

			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "new-hash", user.PasswordHash)
					assert.Equal(t, "jdoe", user.Username)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.UpdateUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(7), output.ID)
}

func TestUserService_UpdateUser_RenameToTakenUsername(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.UpdateUserInput{
		ID:       7,
		Username: "other",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, int64(7)).
				Return(&entity.User{ID: 7, Username: "jdoe", Status: entity.StatusActive}, nil)

			mockUserRepo.EXPECT().
				FindOne(ctx, repository.UserProbe{Username: "other"}).
				Return(&entity.User{ID: 8, Username: "other"}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.UpdateUser(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, int64(404)).
				Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.UpdateUser(ctx, &usecase.UpdateUserInput{ID: 404, Name: "New"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_SearchUsers_EmptyCriteria(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	output, err := fx.service.SearchUsers(ctx, &usecase.SearchUsersInput{})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_SearchUsers_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindAll(ctx, repository.UserProbe{Name: "john", Status: entity.StatusActive}).
		Return([]*entity.User{
			{ID: 1, Username: "jdoe", Name: "John", Status: entity.StatusActive},
			{ID: 2, Username: "jsmith", Name: "Johnny", Status: entity.StatusActive},
		}, nil)

	output, err := fx.service.SearchUsers(ctx, &usecase.SearchUsersInput{
		Name:   "john",
		Status: "Active",
	})

	require.NoError(t, err)
	require.Len(t, output, 2)
	assert.Equal(t, "jdoe", output[0].Username)
	assert.Equal(t, "jsmith", output[1].Username)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.GetUser(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
