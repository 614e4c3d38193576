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

// InquiryHandler holds dependencies for lead handlers.
type InquiryHandler struct {
	uc     usecase.InquiryUsecase
	logger *slog.Logger
}

// NewInquiryHandler is the constructor for InquiryHandler, injected by Fx.
func NewInquiryHandler(uc usecase.InquiryUsecase, logger *slog.Logger) *InquiryHandler {
	return &InquiryHandler{uc: uc, logger: logger}
}

type inquiryRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	Message    string `json:"message" validate:"required"`
}

type inquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Contacted Resolved"`
}

// Create submits a lead against a listing.
func (h *InquiryHandler) Create(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session.")
	}

	var input inquiryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inquiry input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	inquiry, err := h.uc.Submit(c.Request().Context(), actor, usecase.InquiryDraft{
		PropertyID: input.PropertyID,
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Message:    input.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, inquiry, "Inquiry submitted successfully")
}

// ListSent returns the actor's submitted leads.
func (h *InquiryHandler) ListSent(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session.")
	}

	inquiries, err := h.uc.Sent(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, inquiries, "Inquiries fetched successfully")
}

// ListReceived returns leads against the actor's listings.
func (h *InquiryHandler) ListReceived(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session.")
	}

	inquiries, err := h.uc.Received(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, inquiries, "Inquiries fetched successfully")
}

// SetStatus transitions a received lead.
func (h *InquiryHandler) SetStatus(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session.")
	}

	var input inquiryStatusRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	inquiry, err := h.uc.SetStatus(c.Request().Context(), actor, c.Param("id"), entity.InquiryStatus(input.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, inquiry, "Inquiry status updated successfully")
}

// Delete removes a lead.
func (h *InquiryHandler) Delete(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session.")
	}

	if err := h.uc.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Inquiry deleted successfully")
}
