// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"strings"

	"sphere/internal/domain/entity"
)

// ErrRoleNotFound is returned when no role matches the given criteria.
var ErrRoleNotFound = errors.New("role not found")

// RoleProbe describes search criteria for roles, following the same
// present-fields-AND convention as UserProbe.
type RoleProbe struct {
	ID   int64  // Exact match when > 0.
	Name string // Case-insensitive exact match.
}

// HasCriteria reports whether at least one field of the probe is usable.
func (p RoleProbe) HasCriteria() bool {
	return p.ID > 0 || strings.TrimSpace(p.Name) != ""
}

// RoleRepository defines the standard operations for role persistence.
type RoleRepository interface {
	// FindOne retrieves at most one role matching the probe. Returns
	// ErrRoleNotFound when nothing matches and ErrEmptyProbe when the
	// probe has no criteria.
	FindOne(ctx context.Context, probe RoleProbe) (*entity.Role, error)

	// List retrieves all roles.
	List(ctx context.Context) ([]*entity.Role, error)
}
