package usecase

import (
	"context"

	"propmart/internal/domain/entity"
	"propmart/internal/domain/repository"
)

// PropertyDraft is the validated payload for creating or updating a
// listing. Fields are enumerated; unknown form fields are rejected at
// the handler boundary and never reach the draft.
type PropertyDraft struct {
	Title           string
	Description     string
	Price           float64
	Location        entity.Location
	PropertyType    string
	TransactionType entity.TransactionType
	Bedrooms        int
	Bathrooms       int
	SquareFeet      int
}

// PropertyUsecase defines the interface for listing management use cases.
type PropertyUsecase interface {
	// Browse returns listings matching the query.
	Browse(ctx context.Context, query repository.PropertyQuery) ([]entity.Property, error)

	// OwnListings returns the actor's own listings (broker portal).
	OwnListings(ctx context.Context, actor Actor) ([]entity.Property, error)

	// GetByID returns one listing.
	GetByID(ctx context.Context, id string) (entity.Property, error)

	// Create stores a new listing owned by the actor, pending review.
	Create(ctx context.Context, actor Actor, draft PropertyDraft) (entity.Property, error)

	// Update replaces a listing's fields; only the owner or an admin may.
	Update(ctx context.Context, actor Actor, id string, draft PropertyDraft) (entity.Property, error)

	// Delete removes a listing; only the owner or an admin may.
	Delete(ctx context.Context, actor Actor, id string) error

	// Approve transitions a pending listing to Approved.
	Approve(ctx context.Context, id string) (entity.Property, error)
}
