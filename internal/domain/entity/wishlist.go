package entity

import "time"

// WishlistItem marks one property as saved by one user.
// Membership is keyed by the property, so the property id doubles as
// the item's stable identifier.
type WishlistItem struct {
	PropertyID string    `json:"propertyId"`
	UserID     string    `json:"userId,omitempty"`
	AddedAt    time.Time `json:"addedAt"`
}

// EntityID returns the stable unique identifier of the wishlist entry.
func (w WishlistItem) EntityID() string {
	return w.PropertyID
}
