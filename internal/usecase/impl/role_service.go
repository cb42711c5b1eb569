package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "sphere/internal/delivery/context"
	"sphere/internal/domain/entity"
	domainerrors "sphere/internal/domain/errors"
	"sphere/internal/domain/repository"
	"sphere/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// roleService implements the RoleUsecase interface.
type roleService struct {
	roleRepo repository.RoleRepository
	logger   *slog.Logger
}

// RoleServiceParams holds dependencies for roleService, injected by Fx.
type RoleServiceParams struct {
	fx.In

	RoleRepo repository.RoleRepository
	Logger   *slog.Logger
}

// NewRoleService is the constructor for roleService.
func NewRoleService(params RoleServiceParams) usecase.RoleUsecase {
	return &roleService{
		roleRepo: params.RoleRepo,
		logger:   params.Logger,
	}
}

func (srv *roleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetRole retrieves a single role by ID or name.
func (srv *roleService) GetRole(ctx context.Context, id int64, name string) (*entity.Role, error) {
	probe := repository.RoleProbe{ID: id, Name: strings.TrimSpace(name)}
	if !probe.HasCriteria() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "role id or name is required")
	}

	role, err := srv.roleRepo.FindOne(ctx, probe)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRoleNotFound, "role lookup")
		}

		srv.log(ctx).Error("Role lookup failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to look up role")
	}

	return role, nil
}

// ListRoles retrieves all roles.
func (srv *roleService) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	roles, err := srv.roleRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Role list failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to list roles")
	}

	return roles, nil
}
