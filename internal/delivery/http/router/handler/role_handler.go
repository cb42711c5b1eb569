package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"sphere/internal/delivery/http/response"
	"sphere/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RoleHandler holds dependencies for role-related handlers.
type RoleHandler struct {
	uc     usecase.RoleUsecase
	logger *slog.Logger
}

// NewRoleHandler is the constructor for RoleHandler, injected by Fx.
func NewRoleHandler(uc usecase.RoleUsecase, logger *slog.Logger) *RoleHandler {
	return &RoleHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the role listing request.
func (h *RoleHandler) List(c echo.Context) error {
	output, err := h.uc.ListRoles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Get handles the single-role lookup request by ID.
func (h *RoleHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid role id")
	}

	output, err := h.uc.GetRole(c.Request().Context(), id, "")
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
