package client

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"propmart/internal/domain/entity"
	"propmart/internal/store"
	"propmart/internal/transport"
)

// Fallback messages stored when the transport surfaces no server message.
const (
	msgFetchProperties   = "Failed to fetch properties."
	msgFetchMyProperties = "Failed to fetch your properties."
	msgFetchProperty     = "Failed to fetch property."
	msgCreateProperty    = "Failed to create property."
	msgUpdateProperty    = "Failed to update property."
	msgDeleteProperty    = "Failed to delete property."
	msgApproveProperty   = "Failed to approve property."
)

// Properties is the listing slice. Create intentionally does not append
// to the collection: callers re-run List after a successful create, so
// the collection only ever holds server-confirmed list results.
type Properties struct {
	res *store.Resource[entity.Property]
	t   transport.Client
}

func newProperties(t transport.Client, logger *slog.Logger) *Properties {
	return &Properties{
		res: store.New[entity.Property]("properties", logger),
		t:   t,
	}
}

// PropertyInput is the typed mutation payload for listings. Fields map
// onto the backend's multipart form; unknown fields cannot be smuggled in.
type PropertyInput struct {
	Title           string
	Description     string
	Price           float64
	City            string
	District        string
	Area            string
	FullAddress     string
	Pincode         string
	PropertyType    string
	TransactionType entity.TransactionType
	Bedrooms        int
	Bathrooms       int
	SquareFeet      int
}

func (in PropertyInput) form(files []transport.File) *transport.Form {
	fields := url.Values{}
	fields.Set("title", in.Title)
	fields.Set("description", in.Description)
	fields.Set("price", strconv.FormatFloat(in.Price, 'f', -1, 64))
	fields.Set("city", in.City)
	fields.Set("district", in.District)
	fields.Set("area", in.Area)
	fields.Set("fullAddress", in.FullAddress)
	fields.Set("pincode", in.Pincode)
	fields.Set("property_type", in.PropertyType)
	fields.Set("transaction_type", in.TransactionType.String())
	fields.Set("bedrooms", strconv.Itoa(in.Bedrooms))
	fields.Set("bathrooms", strconv.Itoa(in.Bathrooms))
	fields.Set("square_feet", strconv.Itoa(in.SquareFeet))

	return &transport.Form{Fields: fields, Files: files}
}

// List replaces the collection with all listings matching the filter.
// A nil filter fetches everything.
func (p *Properties) List(ctx context.Context, filter *PropertyFilter) ([]entity.Property, error) {
	var query url.Values
	if filter != nil {
		query = filter.Query()
	}

	return p.res.List(ctx, msgFetchProperties, func(ctx context.Context) ([]entity.Property, error) {
		var items []entity.Property
		err := p.t.Do(ctx, transport.Request{
			Method: http.MethodGet,
			Path:   "/properties",
			Query:  query,
		}, &items)

		return items, err
	})
}

// ListMine replaces the collection with the caller's own listings
// (broker portal).
func (p *Properties) ListMine(ctx context.Context) ([]entity.Property, error) {
	return p.res.List(ctx, msgFetchMyProperties, func(ctx context.Context) ([]entity.Property, error) {
		var items []entity.Property
		err := p.t.Do(ctx, transport.Request{
			Method: http.MethodGet,
			Path:   "/properties/my-properties",
		}, &items)

		return items, err
	})
}

// GetByID fetches one listing and sets it as the focused property.
func (p *Properties) GetByID(ctx context.Context, id string) (entity.Property, error) {
	return p.res.Get(ctx, msgFetchProperty, func(ctx context.Context) (entity.Property, error) {
		var item entity.Property
		err := p.t.Do(ctx, transport.Request{
			Method: http.MethodGet,
			Path:   "/properties/" + id,
		}, &item)

		return item, err
	})
}

// Create submits a new listing as a multipart form with optional images.
func (p *Properties) Create(ctx context.Context, input PropertyInput, files ...transport.File) (entity.Property, error) {
	return p.res.Create(ctx, msgCreateProperty, store.RequireRefetch, func(ctx context.Context) (entity.Property, error) {
		var item entity.Property
		err := p.t.Do(ctx, transport.Request{
			Method: http.MethodPost,
			Path:   "/properties",
			Form:   input.form(files),
		}, &item)

		return item, err
	})
}

// Update submits changed fields and replaces the matching collection
// element with the server-returned listing.
func (p *Properties) Update(ctx context.Context, id string, input PropertyInput, files ...transport.File) (entity.Property, error) {
	return p.res.Update(ctx, id, msgUpdateProperty, func(ctx context.Context) (entity.Property, error) {
		var item entity.Property
		err := p.t.Do(ctx, transport.Request{
			Method: http.MethodPut,
			Path:   "/properties/" + id,
			Form:   input.form(files),
		}, &item)

		return item, err
	})
}

// Delete removes a listing. A server-side not-found settles as a failure
// and leaves the collection unchanged.
func (p *Properties) Delete(ctx context.Context, id string) error {
	return p.res.Delete(ctx, id, msgDeleteProperty, func(ctx context.Context) error {
		return p.t.Do(ctx, transport.Request{
			Method: http.MethodDelete,
			Path:   "/properties/" + id,
		}, nil)
	})
}

// Approve transitions a pending listing to Approved (admin portal) and
// replaces it in place.
func (p *Properties) Approve(ctx context.Context, id string) (entity.Property, error) {
	return p.res.Update(ctx, id, msgApproveProperty, func(ctx context.Context) (entity.Property, error) {
		var item entity.Property
		err := p.t.Do(ctx, transport.Request{
			Method: http.MethodPut,
			Path:   "/properties/" + id + "/approve",
		}, &item)

		return item, err
	})
}

// Items returns a copy of the cached listings.
func (p *Properties) Items() []entity.Property {
	return p.res.Items()
}

// Current returns the focused listing, if any.
func (p *Properties) Current() *entity.Property {
	return p.res.Current()
}

// Status returns the slice's shared request status.
func (p *Properties) Status() store.Status {
	return p.res.Status()
}

// Subscribe registers a render callback; see store.Resource.Subscribe.
func (p *Properties) Subscribe(fn func(store.Snapshot[entity.Property])) (cancel func()) {
	return p.res.Subscribe(fn)
}

// Reset returns the status to Idle, keeping cached data.
func (p *Properties) Reset() {
	p.res.Reset()
}
