package handler

import (
	"log/slog"
	"net/http"

	"propmart/internal/devserver/middleware"
	"propmart/internal/devserver/response"
	"propmart/internal/domain/entity"
	"propmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

type userUpdateRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email" validate:"omitempty,email"`
	Agency string `json:"agency"`
	Status string `json:"status" validate:"omitempty,oneof=Active Inactive"`
	Role   string `json:"role" validate:"omitempty,oneof=admin broker user"`
}

// List returns every account (admin portal).
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users fetched successfully")
}

// ListBrokers returns broker accounts.
func (h *UserHandler) ListBrokers(c echo.Context) error {
	brokers, err := h.uc.Brokers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, brokers, "Brokers fetched successfully")
}

// Update applies a partial account update.
func (h *UserHandler) Update(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session.")
	}

	var input userUpdateRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user update input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.uc.Update(c.Request().Context(), actor, c.Param("id"), usecase.UserPatch{
		Name:   input.Name,
		Email:  input.Email,
		Agency: input.Agency,
		Status: entity.UserStatus(input.Status),
		Role:   entity.Role(input.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}

// Delete removes an account.
func (h *UserHandler) Delete(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session.")
	}

	if err := h.uc.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}
