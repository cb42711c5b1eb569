// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
)

// CreateUserInput defines the data required to provision a new user.
// The plaintext password is hashed immediately and discarded.
type CreateUserInput struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Password string `json:"password" validate:"required"`
	Verified string `json:"verified"`
	RoleID   int64  `json:"roleId" validate:"required"`
}

// UpdateUserInput defines the data for updating an existing user.
// Zero-valued fields are left unchanged; a non-empty Password rotates the
// stored hash.
type UpdateUserInput struct {
	ID       int64  `json:"id" validate:"required"`
	Username string `json:"username"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Password string `json:"password"`
	Status   string `json:"status"`
	Verified string `json:"verified"`
	RoleID   int64  `json:"roleId"`
}

// SearchUsersInput carries the administrative search criteria. Every field
// is optional, but at least one must be supplied.
type SearchUsersInput struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Status   string `json:"status"`
	Verified string `json:"verified"`
	RoleID   int64  `json:"roleId"`
}

// UserUsecase defines the interface for user provisioning and search.
type UserUsecase interface {
	// CreateUser provisions a new user, rejecting duplicate usernames.
	CreateUser(ctx context.Context, input *CreateUserInput) (*UserProjection, error)

	// UpdateUser modifies an existing user and optionally rotates the
	// password hash.
	UpdateUser(ctx context.Context, input *UpdateUserInput) (*UserProjection, error)

	// GetUser retrieves a single user by ID.
	GetUser(ctx context.Context, id int64) (*UserProjection, error)

	// SearchUsers retrieves every user matching the supplied criteria.
	SearchUsers(ctx context.Context, input *SearchUsersInput) ([]*UserProjection, error)
}
