package client

import (
	"context"
	"log/slog"
	"net/http"

	"propmart/internal/domain/entity"
	"propmart/internal/store"
	"propmart/internal/transport"
)

const (
	msgCreateInquiry       = "Inquiry submission failed."
	msgFetchSentInquiries  = "Failed to fetch sent inquiries."
	msgFetchRecvdInquiries = "Failed to fetch received inquiries."
	msgUpdateInquiryStatus = "Failed to update status."
	msgDeleteInquiry       = "Failed to delete inquiry."
)

// Inquiries is the lead slice. It caches two lists: leads the session
// user sent, and leads received against the user's own listings. Each
// list carries its own status; a delete settles one server call and is
// mirrored into both lists.
type Inquiries struct {
	sent     *store.Resource[entity.Inquiry]
	received *store.Resource[entity.Inquiry]
	t        transport.Client
}

func newInquiries(t transport.Client, logger *slog.Logger) *Inquiries {
	return &Inquiries{
		sent:     store.New[entity.Inquiry]("inquiries.sent", logger),
		received: store.New[entity.Inquiry]("inquiries.received", logger),
		t:        t,
	}
}

// InquiryInput is the typed payload for submitting a lead.
type InquiryInput struct {
	PropertyID string `json:"propertyId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
}

// Create submits a lead and appends the server-returned inquiry to the
// sent list.
func (i *Inquiries) Create(ctx context.Context, input InquiryInput) (entity.Inquiry, error) {
	return i.sent.Create(ctx, msgCreateInquiry, store.Append, func(ctx context.Context) (entity.Inquiry, error) {
		var item entity.Inquiry
		err := i.t.Do(ctx, transport.Request{
			Method: http.MethodPost,
			Path:   "/inquiries",
			Body:   input,
		}, &item)

		return item, err
	})
}

// ListSent replaces the sent list with the session user's submitted
// leads.
func (i *Inquiries) ListSent(ctx context.Context) ([]entity.Inquiry, error) {
	return i.sent.List(ctx, msgFetchSentInquiries, func(ctx context.Context) ([]entity.Inquiry, error) {
		var items []entity.Inquiry
		err := i.t.Do(ctx, transport.Request{
			Method: http.MethodGet,
			Path:   "/inquiries/sent",
		}, &items)

		return items, err
	})
}

// ListReceived replaces the received list with leads against the session
// user's listings.
func (i *Inquiries) ListReceived(ctx context.Context) ([]entity.Inquiry, error) {
	return i.received.List(ctx, msgFetchRecvdInquiries, func(ctx context.Context) ([]entity.Inquiry, error) {
		var items []entity.Inquiry
		err := i.t.Do(ctx, transport.Request{
			Method: http.MethodGet,
			Path:   "/inquiries/received",
		}, &items)

		return items, err
	})
}

// SetStatus transitions a received lead (Pending/Contacted/Resolved) and
// replaces it in place.
func (i *Inquiries) SetStatus(ctx context.Context, id string, status entity.InquiryStatus) (entity.Inquiry, error) {
	return i.received.Update(ctx, id, msgUpdateInquiryStatus, func(ctx context.Context) (entity.Inquiry, error) {
		var item entity.Inquiry
		err := i.t.Do(ctx, transport.Request{
			Method: http.MethodPut,
			Path:   "/inquiries/" + id + "/status",
			Body:   map[string]string{"status": status.String()},
		}, &item)

		return item, err
	})
}

// Delete removes a lead from the server and from both cached lists.
func (i *Inquiries) Delete(ctx context.Context, id string) error {
	err := i.received.Delete(ctx, id, msgDeleteInquiry, func(ctx context.Context) error {
		return i.t.Do(ctx, transport.Request{
			Method: http.MethodDelete,
			Path:   "/inquiries/" + id,
		}, nil)
	})
	if err != nil {
		return err
	}

	i.sent.Discard(id)

	return nil
}

// Sent returns a copy of the cached sent leads.
func (i *Inquiries) Sent() []entity.Inquiry {
	return i.sent.Items()
}

// Received returns a copy of the cached received leads.
func (i *Inquiries) Received() []entity.Inquiry {
	return i.received.Items()
}

// SentStatus returns the request status of the sent list.
func (i *Inquiries) SentStatus() store.Status {
	return i.sent.Status()
}

// ReceivedStatus returns the request status of the received list.
func (i *Inquiries) ReceivedStatus() store.Status {
	return i.received.Status()
}

// SubscribeSent registers a render callback on the sent list.
func (i *Inquiries) SubscribeSent(fn func(store.Snapshot[entity.Inquiry])) (cancel func()) {
	return i.sent.Subscribe(fn)
}

// SubscribeReceived registers a render callback on the received list.
func (i *Inquiries) SubscribeReceived(fn func(store.Snapshot[entity.Inquiry])) (cancel func()) {
	return i.received.Subscribe(fn)
}

// Reset returns both statuses to Idle, keeping cached data.
func (i *Inquiries) Reset() {
	i.sent.Reset()
	i.received.Reset()
}
