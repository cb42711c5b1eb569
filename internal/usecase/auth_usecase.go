// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"sphere/internal/domain/entity"
)

// AuthenticateInput defines the credentials supplied on a login request.
type AuthenticateInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserProjection is the sanitized view of a user returned to callers.
// It never carries the password hash.
type UserProjection struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Status   string `json:"status"`
	Verified string `json:"verified"`
	RoleID   int64  `json:"roleId"`
	RoleName string `json:"roleName"`
}

// NewUserProjection maps a user entity to its sanitized projection.
// Returns nil for nil input.
func NewUserProjection(user *entity.User) *UserProjection {
	if user == nil {
		return nil
	}

	return &UserProjection{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		LastName: user.LastName,
		Status:   user.Status.String(),
		Verified: user.Verified,
		RoleID:   user.RoleID,
		RoleName: user.RoleName(),
	}
}

// AuthenticateOutput returns the issued token and the sanitized user after a
// successful login.
type AuthenticateOutput struct {
	Token string          `json:"token"`
	User  *UserProjection `json:"user"`
}

// AuthUsecase defines the authentication entry point consumed by the HTTP
// login endpoint.
type AuthUsecase interface {
	// Authenticate decides login success or failure for the supplied
	// credentials and issues a bearer token on success. Failures are
	// reported through the domain error taxonomy; unknown-username and
	// wrong-password outcomes are indistinguishable to the caller.
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)
}
