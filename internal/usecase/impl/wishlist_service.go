package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainerrors "propmart/internal/domain/errors"
	"propmart/internal/domain/entity"
	"propmart/internal/domain/repository"
	"propmart/internal/usecase"
)

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	propertyRepo repository.PropertyRepository
}

// NewWishlistService creates a new saved-property service.
func NewWishlistService(wishlistRepo repository.WishlistRepository, propertyRepo repository.PropertyRepository) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		propertyRepo: propertyRepo,
	}
}

// List returns the actor's saved properties.
func (s *wishlistService) List(ctx context.Context, actor usecase.Actor) ([]entity.WishlistItem, error) {
	items, err := s.wishlistRepo.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}

	return items, nil
}

// Add saves a property for the actor. The property must exist.
func (s *wishlistService) Add(ctx context.Context, actor usecase.Actor, propertyID string) (entity.WishlistItem, error) {
	if _, err := s.propertyRepo.FindByID(ctx, propertyID); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return entity.WishlistItem{}, domainerrors.ErrPropertyNotFound
		}

		return entity.WishlistItem{}, fmt.Errorf("failed to find property: %w", err)
	}

	item := entity.WishlistItem{
		PropertyID: propertyID,
		UserID:     actor.ID,
		AddedAt:    time.Now(),
	}

	if err := s.wishlistRepo.Add(ctx, item); err != nil {
		if errors.Is(err, repository.ErrAlreadyWishlisted) {
			return entity.WishlistItem{}, domainerrors.ErrAlreadyWishlisted
		}

		return entity.WishlistItem{}, fmt.Errorf("failed to add wishlist item: %w", err)
	}

	return item, nil
}

// Remove deletes the actor's membership for one property.
func (s *wishlistService) Remove(ctx context.Context, actor usecase.Actor, propertyID string) error {
	if err := s.wishlistRepo.Remove(ctx, actor.ID, propertyID); err != nil {
		if errors.Is(err, repository.ErrWishlistItemNotFound) {
			return domainerrors.ErrWishlistItemNotFound
		}

		return fmt.Errorf("failed to remove wishlist item: %w", err)
	}

	return nil
}
