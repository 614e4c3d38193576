package handler

import (
	"log/slog"
	"net/http"

	"propmart/internal/devserver/middleware"
	"propmart/internal/devserver/response"
	"propmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WishlistHandler holds dependencies for saved-property handlers.
type WishlistHandler struct {
	uc     usecase.WishlistUsecase
	logger *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(uc usecase.WishlistUsecase, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{uc: uc, logger: logger}
}

type wishlistRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
}

// List returns the actor's saved properties.
func (h *WishlistHandler) List(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session.")
	}

	items, err := h.uc.List(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Wishlist fetched successfully")
}

// Add saves a property for the actor.
func (h *WishlistHandler) Add(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session.")
	}

	var input wishlistRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	item, err := h.uc.Add(c.Request().Context(), actor, input.PropertyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Property added to wishlist")
}

// Remove drops a property from the actor's wishlist.
func (h *WishlistHandler) Remove(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session.")
	}

	if err := h.uc.Remove(c.Request().Context(), actor, c.Param("propertyId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Property removed from wishlist")
}
