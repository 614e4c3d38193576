// Package client exposes the marketplace SDK: five resource slices
// (properties, users, inquiries, wishlist, dashboard) sharing one
// transport, plus the in-memory property filter used by list views.
//
// Slices are independent; the only coordination between them happens in
// the caller by joining on shared identifiers (e.g. wishlist membership
// per property id).
package client

import (
	"log/slog"

	"propmart/internal/transport"
)

// Client bundles the resource slices over a single transport. Construct
// one per session; there is no ambient singleton.
type Client struct {
	Auth       *Auth
	Properties *Properties
	Users      *Users
	Inquiries  *Inquiries
	Wishlist   *Wishlist
	Dashboard  *Dashboard
}

// New wires the slices over the given transport.
func New(t transport.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		Auth:       newAuth(t),
		Properties: newProperties(t, logger),
		Users:      newUsers(t, logger),
		Inquiries:  newInquiries(t, logger),
		Wishlist:   newWishlist(t, logger),
		Dashboard:  newDashboard(t, logger),
	}
}
