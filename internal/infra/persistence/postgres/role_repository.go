// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"log/slog"

	"sphere/internal/domain/entity"
	"sphere/internal/domain/repository"
	"sphere/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// roleRepository implements the repository.RoleRepository interface using GORM.
type roleRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB, logger *slog.Logger) repository.RoleRepository {
	return &roleRepository{db: db, logger: logger}
}

// FindOne retrieves at most one role matching the probe.
func (repo *roleRepository) FindOne(ctx context.Context, probe repository.RoleProbe) (*entity.Role, error) {
	conds, err := roleProbeConditions(probe)
	if err != nil {
		return nil, err
	}

	var roleM model.RoleModel
	tx := applyConditions(repo.db.WithContext(ctx), conds)
	if err := tx.First(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by probe")
	}

	return toRoleDomain(&roleM, repo.logger), nil
}

// List retrieves all roles ordered by ID.
func (repo *roleRepository) List(ctx context.Context) ([]*entity.Role, error) {
	var roleMs []*model.RoleModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&roleMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	roles := make([]*entity.Role, 0, len(roleMs))
	for _, roleM := range roleMs {
		roles = append(roles, toRoleDomain(roleM, repo.logger))
	}

	return roles, nil
}

// toRoleDomain converts a GORM RoleModel to a domain Role entity. The JSON
// permission and module documents decode leniently: a malformed document
// yields an empty slice rather than failing the whole lookup, but the
// corrupted row is logged so operators can find it.
func toRoleDomain(data *model.RoleModel, logger *slog.Logger) *entity.Role {
	if data == nil {
		return nil
	}

	var permissions []entity.Permission
	if data.Permissions != "" {
		if err := json.Unmarshal([]byte(data.Permissions), &permissions); err != nil && logger != nil {
			logger.Warn("Malformed role permissions document",
				slog.Int64("roleID", data.ID), slog.Any("error", err))
		}
	}

	var modules []entity.Module
	if data.Modules != "" {
		if err := json.Unmarshal([]byte(data.Modules), &modules); err != nil && logger != nil {
			logger.Warn("Malformed role modules document",
				slog.Int64("roleID", data.ID), slog.Any("error", err))
		}
	}

	return &entity.Role{
		ID:             data.ID,
		Name:           data.Name,
		NormalizedName: data.NormalizedName,
		Permissions:    permissions,
		Modules:        modules,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
