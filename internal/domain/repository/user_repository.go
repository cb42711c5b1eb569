// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"strings"

	"sphere/internal/domain/entity"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when no user matches the given criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmptyProbe is returned when a probe carries no usable criteria.
	// An unconstrained probe would scan the whole table, so the finder
	// rejects the call instead. This is a programming error, not a
	// runtime condition.
	ErrEmptyProbe = errors.New("probe carries no criteria")
)

// UserProbe describes search criteria for users. Every field is optional:
// the zero value of a field means "do not filter on this field". Present
// fields are combined with logical AND. Probes are built per request and
// never persisted.
type UserProbe struct {
	ID       int64         // Exact match when > 0.
	Username string        // Case-insensitive exact match; the canonical lookup key.
	Name     string        // Case-insensitive substring match.
	LastName string        // Case-insensitive substring match.
	Status   entity.Status // Exact match.
	Verified string        // Exact match.
	RoleID   int64         // Exact match when > 0.
}

// HasCriteria reports whether at least one field of the probe is usable.
// String fields count only when non-empty after trimming.
func (p UserProbe) HasCriteria() bool {
	return p.ID > 0 ||
		strings.TrimSpace(p.Username) != "" ||
		strings.TrimSpace(p.Name) != "" ||
		strings.TrimSpace(p.LastName) != "" ||
		p.Status != "" ||
		strings.TrimSpace(p.Verified) != "" ||
		p.RoleID > 0
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindOne retrieves at most one user matching the probe, with the Role
	// reference eager-loaded. Returns ErrUserNotFound when nothing matches
	// and ErrEmptyProbe when the probe has no criteria.
	FindOne(ctx context.Context, probe UserProbe) (*entity.User, error)

	// FindAll retrieves every user matching the probe, for administrative
	// search. The same ErrEmptyProbe safety rule applies.
	FindAll(ctx context.Context, probe UserProbe) ([]*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error
}
