package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"propmart/internal/devserver/middleware"
	"propmart/internal/devserver/response"
	"propmart/internal/domain/entity"
	"propmart/internal/domain/repository"
	"propmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// listingFormFields enumerates the accepted multipart fields. Anything
// else in the form is rejected so clients cannot smuggle arbitrary
// attributes into a listing.
var listingFormFields = map[string]bool{
	"title":            true,
	"description":      true,
	"price":            true,
	"city":             true,
	"district":         true,
	"area":             true,
	"fullAddress":      true,
	"pincode":          true,
	"property_type":    true,
	"transaction_type": true,
	"bedrooms":         true,
	"bathrooms":        true,
	"square_feet":      true,
}

// PropertyHandler holds dependencies for listing handlers.
type PropertyHandler struct {
	uc     usecase.PropertyUsecase
	logger *slog.Logger
}

// NewPropertyHandler is the constructor for PropertyHandler, injected by Fx.
func NewPropertyHandler(uc usecase.PropertyUsecase, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{uc: uc, logger: logger}
}

// List returns listings matching the query parameters.
func (h *PropertyHandler) List(c echo.Context) error {
	query, err := parsePropertyQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	listings, err := h.uc.Browse(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "Properties fetched successfully")
}

// ListMine returns the authenticated actor's own listings.
func (h *PropertyHandler) ListMine(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session.")
	}

	listings, err := h.uc.OwnListings(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "Properties fetched successfully")
}

// GetByID returns one listing.
func (h *PropertyHandler) GetByID(c echo.Context) error {
	listing, err := h.uc.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "Property fetched successfully")
}

// Create stores a new listing submitted as a multipart form.
func (h *PropertyHandler) Create(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session.")
	}

	draft, err := parseListingForm(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	listing, err := h.uc.Create(c.Request().Context(), actor, draft)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, listing, "Property created successfully")
}

// Update replaces a listing's fields from a multipart form.
func (h *PropertyHandler) Update(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session.")
	}

	draft, err := parseListingForm(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	listing, err := h.uc.Update(c.Request().Context(), actor, c.Param("id"), draft)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "Property updated successfully")
}

// Delete removes a listing.
func (h *PropertyHandler) Delete(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session.")
	}

	if err := h.uc.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Property deleted successfully")
}

// Approve transitions a pending listing to Approved (admin only, gated
// by the router).
func (h *PropertyHandler) Approve(c echo.Context) error {
	listing, err := h.uc.Approve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "Property approved successfully")
}

func parsePropertyQuery(c echo.Context) (repository.PropertyQuery, error) {
	query := repository.PropertyQuery{
		Search:          c.QueryParam("search"),
		City:            c.QueryParam("city"),
		PropertyType:    c.QueryParam("property_type"),
		TransactionType: entity.TransactionType(c.QueryParam("transaction_type")),
		Status:          entity.PropertyStatus(c.QueryParam("status")),
	}

	if raw := c.QueryParam("bedrooms"); raw != "" {
		bedrooms, err := strconv.Atoi(raw)
		if err != nil {
			return repository.PropertyQuery{}, errors.New("bedrooms must be an integer")
		}
		query.Bedrooms = &bedrooms
	}
	if raw := c.QueryParam("minPrice"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return repository.PropertyQuery{}, errors.New("minPrice must be a number")
		}
		query.MinPrice = &minPrice
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return repository.PropertyQuery{}, errors.New("maxPrice must be a number")
		}
		query.MaxPrice = &maxPrice
	}

	return query, nil
}

func parseListingForm(c echo.Context) (usecase.PropertyDraft, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return usecase.PropertyDraft{}, errors.New("request must be multipart form data")
	}

	for field := range form.Value {
		if !listingFormFields[field] {
			return usecase.PropertyDraft{}, errors.Errorf("unknown field %q", field)
		}
	}

	value := func(field string) string {
		if vs := form.Value[field]; len(vs) > 0 {
			return vs[0]
		}

		return ""
	}

	draft := usecase.PropertyDraft{
		Title:       value("title"),
		Description: value("description"),
		Location: entity.Location{
			City:        value("city"),
			District:    value("district"),
			Area:        value("area"),
			FullAddress: value("fullAddress"),
			Pincode:     value("pincode"),
		},
		PropertyType:    value("property_type"),
		TransactionType: entity.TransactionType(value("transaction_type")),
	}

	if draft.Title == "" {
		return usecase.PropertyDraft{}, errors.New("title is required")
	}
	if !draft.TransactionType.IsValid() {
		return usecase.PropertyDraft{}, errors.New("transaction_type must be sale, rent or lease")
	}

	if raw := value("price"); raw != "" {
		draft.Price, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return usecase.PropertyDraft{}, errors.New("price must be a number")
		}
	}
	if raw := value("bedrooms"); raw != "" {
		draft.Bedrooms, err = strconv.Atoi(raw)
		if err != nil {
			return usecase.PropertyDraft{}, errors.New("bedrooms must be an integer")
		}
	}
	if raw := value("bathrooms"); raw != "" {
		draft.Bathrooms, err = strconv.Atoi(raw)
		if err != nil {
			return usecase.PropertyDraft{}, errors.New("bathrooms must be an integer")
		}
	}
	if raw := value("square_feet"); raw != "" {
		draft.SquareFeet, err = strconv.Atoi(raw)
		if err != nil {
			return usecase.PropertyDraft{}, errors.New("square_feet must be an integer")
		}
	}

	return draft, nil
}
