// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"sphere/internal/delivery/http/middleware"
	"sphere/internal/delivery/http/response"
	"sphere/internal/domain/service"
	"sphere/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.AuthenticateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.Authenticate(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// ValidateToken reports the claims of the bearer token that the auth
// middleware already verified. Reaching this handler means the token is valid.
func (h *AuthHandler) ValidateToken(c echo.Context) error {
	claims, ok := c.Get(middleware.ContextKeyClaims).(*service.Claims)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"userId":   claims.Subject,
		"username": claims.Username,
		"name":     claims.Name,
		"lastName": claims.LastName,
		"role":     claims.Role,
		"status":   claims.Status,
		"expires":  claims.ExpiresAt,
	}, "Token is valid")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
