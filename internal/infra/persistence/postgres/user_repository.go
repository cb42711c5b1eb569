// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"log/slog"

	"sphere/internal/domain/entity"
	domainerrors "sphere/internal/domain/errors"
	"sphere/internal/domain/repository"
	"sphere/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB, logger *slog.Logger) repository.UserRepository {
	return &userRepository{db: db, logger: logger}
}

// FindOne retrieves at most one user matching the probe, eager-loading the
// Role reference. An empty probe is rejected before touching the database.
func (repo *userRepository) FindOne(ctx context.Context, probe repository.UserProbe) (*entity.User, error) {
	conds, err := userProbeConditions(probe)
	if err != nil {
		return nil, err
	}

	var userM model.UserModel
	tx := applyConditions(repo.db.WithContext(ctx).Preload("Role"), conds)
	if err := tx.First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by probe")
	}

	return toUserDomain(&userM, repo.logger), nil
}

// FindAll retrieves every user matching the probe, for administrative search.
func (repo *userRepository) FindAll(ctx context.Context, probe repository.UserProbe) ([]*entity.User, error) {
	conds, err := userProbeConditions(probe)
	if err != nil {
		return nil, err
	}

	var userMs []*model.UserModel
	tx := applyConditions(repo.db.WithContext(ctx).Preload("Role"), conds)
	if err := tx.Order("id").Find(&userMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users by probe")
	}

	users := make([]*entity.User, 0, len(userMs))
	for _, userM := range userMs {
		users = append(users, toUserDomain(userM, repo.logger))
	}

	return users, nil
}

// FindByID retrieves a single user by their unique ID, eager-loading the Role.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Role").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM, repo.logger), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	// The role is a non-owning reference; never cascade-save it from here.
	userM.Role = nil

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid role reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("user record violates a data constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Carry the generated values back onto the entity.
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.Role = nil

	if err := repo.db.WithContext(ctx).Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("invalid role reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("missing required user information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("user record violates a data constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.
// Both directions return nil for nil input; absence at the repository
// surface is always expressed through ErrUserNotFound, never (nil, nil).

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel, logger *slog.Logger) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		Name:         data.Name,
		LastName:     data.LastName,
		PasswordHash: data.PasswordHash,
		Status:       entity.Status(data.Status),
		Verified:     data.Verified,
		RoleID:       data.RoleID,
		Role:         toRoleDomain(data.Role, logger),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		Name:         data.Name,
		LastName:     data.LastName,
		PasswordHash: data.PasswordHash,
		Status:       data.Status.String(),
		Verified:     data.Verified,
		RoleID:       data.RoleID,
		CreatedAt:    data.CreatedAt,
	}
}
