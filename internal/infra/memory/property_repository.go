// Package memory provides in-memory repository implementations for the
// development stub server. State lives for the process lifetime only.
package memory

import (
	"context"
	"strings"
	"sync"

	"propmart/internal/domain/entity"
	"propmart/internal/domain/repository"
)

type propertyRepository struct {
	mu    sync.RWMutex
	items []entity.Property
}

// NewPropertyRepository creates an empty in-memory listing store.
func NewPropertyRepository() repository.PropertyRepository {
	return &propertyRepository{}
}

func (r *propertyRepository) List(_ context.Context, query repository.PropertyQuery) ([]entity.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Property, 0, len(r.items))
	for _, p := range r.items {
		if matchesQuery(p, query) {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *propertyRepository) ListByOwner(_ context.Context, ownerID string) ([]entity.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entity.Property
	for _, p := range r.items {
		if p.Owner != nil && p.Owner.ID == ownerID {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *propertyRepository) FindByID(_ context.Context, id string) (entity.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}

	return entity.Property{}, repository.ErrPropertyNotFound
}

func (r *propertyRepository) Create(_ context.Context, property entity.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, property)

	return nil
}

func (r *propertyRepository) Update(_ context.Context, property entity.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == property.ID {
			r.items[i] = property

			return nil
		}
	}

	return repository.ErrPropertyNotFound
}

func (r *propertyRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)

			return nil
		}
	}

	return repository.ErrPropertyNotFound
}

func (r *propertyRepository) Count(_ context.Context) (total, pending int, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.items {
		if p.Status == entity.PropertyPending {
			pending++
		}
	}

	return len(r.items), pending, nil
}

func matchesQuery(p entity.Property, q repository.PropertyQuery) bool {
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) &&
			!strings.Contains(strings.ToLower(p.Location.City), needle) &&
			!strings.Contains(strings.ToLower(p.Location.Area), needle) {
			return false
		}
	}

	if q.City != "" && p.Location.City != q.City {
		return false
	}
	if q.PropertyType != "" && p.PropertyType != q.PropertyType {
		return false
	}
	if q.TransactionType != "" && p.TransactionType != q.TransactionType {
		return false
	}
	if q.Status != "" && p.Status != q.Status {
		return false
	}
	if q.Bedrooms != nil && p.Bedrooms != *q.Bedrooms {
		return false
	}
	if q.MinPrice != nil && p.Price < *q.MinPrice {
		return false
	}
	if q.MaxPrice != nil && p.Price > *q.MaxPrice {
		return false
	}

	return true
}
