package usecase

import (
	"context"

	"propmart/internal/domain/entity"
)

// WishlistUsecase defines the interface for saved-property use cases.
type WishlistUsecase interface {
	// List returns the actor's saved properties, oldest first.
	List(ctx context.Context, actor Actor) ([]entity.WishlistItem, error)

	// Add saves a property for the actor.
	Add(ctx context.Context, actor Actor, propertyID string) (entity.WishlistItem, error)

	// Remove deletes the actor's membership for one property.
	Remove(ctx context.Context, actor Actor, propertyID string) error
}
