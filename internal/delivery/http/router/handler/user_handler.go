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

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the user provisioning request.
func (h *UserHandler) Create(c echo.Context) error {
	var input usecase.CreateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.CreateUser(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User created successfully")
}

// Update handles the user update request. The ID comes from the path and
// wins over any ID in the body.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	var input usecase.UpdateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	input.ID = id

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.UpdateUser(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "User updated successfully")
}

// Get handles the single-user lookup request.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	output, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Search handles the administrative user search. Criteria arrive as query
// parameters; absent parameters impose no constraint.
func (h *UserHandler) Search(c echo.Context) error {
	input := usecase.SearchUsersInput{
		Username: c.QueryParam("username"),
		Name:     c.QueryParam("name"),
		LastName: c.QueryParam("lastName"),
		Status:   c.QueryParam("status"),
		Verified: c.QueryParam("verified"),
	}

	if raw := c.QueryParam("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid id filter")
		}
		input.ID = id
	}
	if raw := c.QueryParam("roleId"); raw != "" {
		roleID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid roleId filter")
		}
		input.RoleID = roleID
	}

	output, err := h.uc.SearchUsers(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
