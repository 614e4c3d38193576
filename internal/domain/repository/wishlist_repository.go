package repository

import (
	"context"

	"propmart/internal/domain/entity"
	"propmart/internal/errors"
)

var (
	// ErrWishlistItemNotFound is returned when removing a property that
	// is not saved.
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
	// ErrAlreadyWishlisted is returned when saving a property twice.
	ErrAlreadyWishlisted = errors.New("property already wishlisted")
)

// WishlistRepository stores saved-property membership per account.
type WishlistRepository interface {
	// ListByUser returns the account's saved properties, oldest first.
	ListByUser(ctx context.Context, userID string) ([]entity.WishlistItem, error)

	// Add saves a property for an account.
	Add(ctx context.Context, item entity.WishlistItem) error

	// Remove deletes the membership for one property.
	Remove(ctx context.Context, userID, propertyID string) error

	// Contains reports whether the account saved the property.
	Contains(ctx context.Context, userID, propertyID string) (bool, error)
}
