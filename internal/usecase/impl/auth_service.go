// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "sphere/internal/delivery/context"
	domainerrors "sphere/internal/domain/errors"
	"sphere/internal/domain/repository"
	"sphere/internal/domain/service"
	"sphere/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. It holds no state
// across requests; every call is an independent read against the store.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate walks the login decision for one request: validate input,
// look up the user by username, verify the password against the stored
// hash, check the account status, then issue a token.
//
// The unknown-username and wrong-password exits deliberately share one
// error so the response cannot reveal whether the account exists; the real
// reason goes to the log only. Infrastructure failures map to the generic
// internal error, never to the credential failure.
func (srv *authService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentialsInput, "login rejected before lookup")
	}

	srv.log(ctx).Debug("Starting authentication", slog.String("username", username))

	user, err := srv.userRepo.FindOne(ctx, repository.UserProbe{Username: username})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Authentication failed: unknown username", slog.String("username", username))

			return nil, errors.Wrap(domainerrors.ErrAuthenticationFailed, "login failed")
		}

		srv.log(ctx).Error("Authentication lookup failed", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to look up user")
	}

	if user.PasswordHash == "" || !srv.hasher.Verify(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Authentication failed: password mismatch", slog.String("username", username))

		return nil, errors.Wrap(domainerrors.ErrAuthenticationFailed, "login failed")
	}

	if !user.Status.IsActive() {
		srv.log(ctx).Warn("Authentication refused: account disabled", slog.String("username", username))

		return nil, errors.Wrap(domainerrors.ErrAccountDisabled, "login refused")
	}

	token, err := srv.tokenService.Generate(service.Identity{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		LastName: user.LastName,
		Role:     user.RoleName(),
		Status:   user.Status.String(),
	})
	if err != nil {
		srv.log(ctx).Error("Token generation failed", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to generate token")
	}

	srv.log(ctx).Info("User authenticated", slog.Int64("userID", user.ID))

	return &usecase.AuthenticateOutput{
		Token: token,
		User:  usecase.NewUserProjection(user),
	}, nil
}
