package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "sphere/internal/delivery/context"
	"sphere/internal/domain/entity"
	domainerrors "sphere/internal/domain/errors"
	"sphere/internal/domain/repository"
	"sphere/internal/domain/service"
	"sphere/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser provisions a new user. The duplicate-username probe check, the
// role existence check and the insert run inside one transaction so a
// concurrent create with the same username cannot slip between them; the
// unique index on username backs the check either way.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*usecase.UserProjection, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "username and password are required")
	}
	if input.RoleID <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "role is required")
	}

	hashedPassword := srv.hasher.Hash(input.Password)
	if hashedPassword == "" {
		srv.log(ctx).Error("Failed to hash password during user creation", slog.String("username", username))

		return nil, errors.Wrap(domainerrors.ErrUserCreationFailed, "failed to hash password")
	}

	verified := strings.TrimSpace(input.Verified)
	if verified == "" {
		verified = "N"
	}

	newUser := &entity.User{
		Username:     username,
		Name:         strings.TrimSpace(input.Name),
		LastName:     strings.TrimSpace(input.LastName),
		PasswordHash: hashedPassword,
		Status:       entity.StatusActive,
		Verified:     verified,
		RoleID:       input.RoleID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		roleRepo := repoFactory.NewRoleRepository()

		if _, err := roleRepo.FindOne(ctx, repository.RoleProbe{ID: input.RoleID}); err != nil {
			if errors.Is(err, repository.ErrRoleNotFound) {
				return errors.Wrap(domainerrors.ErrRoleNotFound, "cannot assign unknown role")
			}

			return errors.Wrap(err, "failed to look up role")
		}

		_, err := userRepo.FindOne(ctx, repository.UserProbe{Username: username})
		if err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "username taken")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username availability")
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute user creation transaction", slog.String("username", username), slog.Any("error", err))

		return nil, err
	}

	// Re-read so the projection carries the eager-loaded role.
	created, err := srv.userRepo.FindByID(ctx, newUser.ID)
	if err != nil {
		srv.log(ctx).Warn("Created user could not be re-read", slog.Int64("userID", newUser.ID), slog.Any("error", err))

		return usecase.NewUserProjection(newUser), nil
	}

	srv.log(ctx).Info("User created", slog.Int64("userID", created.ID))

	return usecase.NewUserProjection(created), nil
}

// UpdateUser modifies an existing user. Zero-valued input fields are left
// unchanged; a non-empty password rotates the stored hash through the hasher.
func (srv *userService) UpdateUser(ctx context.Context, input *usecase.UpdateUserInput) (*usecase.UserProjection, error) {
	if input.ID <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "user id is required")
	}
	if input.Status != "" && !entity.Status(input.Status).IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown status")
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "cannot update missing user")
			}

			return errors.Wrap(err, "failed to look up user")
		}

		if username := strings.TrimSpace(input.Username); username != "" && !strings.EqualFold(username, user.Username) {
			other, err := userRepo.FindOne(ctx, repository.UserProbe{Username: username})
			if err == nil && other.ID != user.ID {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "username taken")
			}
			if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to check username availability")
			}
			user.Username = username
		}

		if name := strings.TrimSpace(input.Name); name != "" {
			user.Name = name
		}
		if lastName := strings.TrimSpace(input.LastName); lastName != "" {
			user.LastName = lastName
		}
		if input.Status != "" {
			user.Status = entity.Status(input.Status)
		}
		if input.Verified != "" {
			user.Verified = input.Verified
		}
		if input.RoleID > 0 {
			roleRepo := repoFactory.NewRoleRepository()
			if _, err := roleRepo.FindOne(ctx, repository.RoleProbe{ID: input.RoleID}); err != nil {
				if errors.Is(err, repository.ErrRoleNotFound) {
					return errors.Wrap(domainerrors.ErrRoleNotFound, "cannot assign unknown role")
				}

				return errors.Wrap(err, "failed to look up role")
			}
			user.RoleID = input.RoleID
			user.Role = nil
		}

		if input.Password != "" {
			hashedPassword := srv.hasher.Hash(input.Password)
			if hashedPassword == "" {
				return errors.Wrap(domainerrors.ErrUserUpdateFailed, "failed to hash password")
			}
			user.PasswordHash = hashedPassword
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute user update transaction", slog.Int64("userID", input.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User updated", slog.Int64("userID", updated.ID))

	return usecase.NewUserProjection(updated), nil
}

// GetUser retrieves a single user by ID.
func (srv *userService) GetUser(ctx context.Context, id int64) (*usecase.UserProjection, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "lookup by id")
		}

		srv.log(ctx).Error("User lookup failed", slog.Int64("userID", id), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to look up user")
	}

	return usecase.NewUserProjection(user), nil
}

// SearchUsers retrieves every user matching the supplied criteria. An input
// with no usable criteria is rejected before touching the store.
func (srv *userService) SearchUsers(ctx context.Context, input *usecase.SearchUsersInput) ([]*usecase.UserProjection, error) {
	probe := repository.UserProbe{
		ID:       input.ID,
		Username: strings.TrimSpace(input.Username),
		Name:     strings.TrimSpace(input.Name),
		LastName: strings.TrimSpace(input.LastName),
		Status:   entity.Status(input.Status),
		Verified: strings.TrimSpace(input.Verified),
		RoleID:   input.RoleID,
	}
	if !probe.HasCriteria() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "at least one search criterion is required")
	}

	users, err := srv.userRepo.FindAll(ctx, probe)
	if err != nil {
		srv.log(ctx).Error("User search failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to search users")
	}

	projections := make([]*usecase.UserProjection, 0, len(users))
	for _, user := range users {
		projections = append(projections, usecase.NewUserProjection(user))
	}

	return projections, nil
}
