// Package repository defines the persistence interfaces consumed by the
// marketplace services. Implementations live under internal/infra.
package repository

import (
	"context"

	"propmart/internal/domain/entity"
	"propmart/internal/errors"
)

// ErrPropertyNotFound is returned when no listing matches the identifier.
var ErrPropertyNotFound = errors.New("property not found")

// PropertyQuery narrows a listing lookup. Zero-valued fields are ignored.
type PropertyQuery struct {
	Search          string
	City            string
	PropertyType    string
	TransactionType entity.TransactionType
	Status          entity.PropertyStatus
	Bedrooms        *int
	MinPrice        *float64
	MaxPrice        *float64
}

// PropertyRepository stores marketplace listings.
type PropertyRepository interface {
	// List returns listings matching the query, in insertion order.
	List(ctx context.Context, query PropertyQuery) ([]entity.Property, error)

	// ListByOwner returns the listings owned by one account.
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Property, error)

	// FindByID returns the listing with the given identifier.
	FindByID(ctx context.Context, id string) (entity.Property, error)

	// Create stores a new listing.
	Create(ctx context.Context, property entity.Property) error

	// Update replaces the stored listing with the same identifier.
	Update(ctx context.Context, property entity.Property) error

	// Delete removes the listing with the given identifier.
	Delete(ctx context.Context, id string) error

	// Count returns total listings and how many await review.
	Count(ctx context.Context) (total, pending int, err error)
}
