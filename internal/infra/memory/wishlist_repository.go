package memory

import (
	"context"
	"sync"

	"propmart/internal/domain/entity"
	"propmart/internal/domain/repository"
)

type wishlistRepository struct {
	mu    sync.RWMutex
	items []entity.WishlistItem
}

// NewWishlistRepository creates an empty in-memory wishlist store.
func NewWishlistRepository() repository.WishlistRepository {
	return &wishlistRepository{}
}

func (r *wishlistRepository) ListByUser(_ context.Context, userID string) ([]entity.WishlistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entity.WishlistItem
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *wishlistRepository) Add(_ context.Context, item entity.WishlistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.UserID == item.UserID && existing.PropertyID == item.PropertyID {
			return repository.ErrAlreadyWishlisted
		}
	}

	r.items = append(r.items, item)

	return nil
}

func (r *wishlistRepository) Remove(_ context.Context, userID, propertyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.UserID == userID && item.PropertyID == propertyID {
			r.items = append(r.items[:i], r.items[i+1:]...)

			return nil
		}
	}

	return repository.ErrWishlistItemNotFound
}

func (r *wishlistRepository) Contains(_ context.Context, userID, propertyID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.UserID == userID && item.PropertyID == propertyID {
			return true, nil
		}
	}

	return false, nil
}
