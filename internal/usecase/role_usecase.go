// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"sphere/internal/domain/entity"
)

// RoleUsecase defines the interface for role lookups.
type RoleUsecase interface {
	// GetRole retrieves a single role by ID or name.
	GetRole(ctx context.Context, id int64, name string) (*entity.Role, error)

	// ListRoles retrieves all roles.
	ListRoles(ctx context.Context) ([]*entity.Role, error)
}
