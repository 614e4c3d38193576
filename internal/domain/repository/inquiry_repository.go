package repository

import (
	"context"

	"propmart/internal/domain/entity"
	"propmart/internal/errors"
)

// ErrInquiryNotFound is returned when no lead matches the identifier.
var ErrInquiryNotFound = errors.New("inquiry not found")

// InquiryRepository stores leads sent against listings.
type InquiryRepository interface {
	// ListBySender returns leads submitted by one account.
	ListBySender(ctx context.Context, senderID string) ([]entity.Inquiry, error)

	// ListByOwner returns leads received against one account's listings.
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Inquiry, error)

	// FindByID returns the lead with the given identifier.
	FindByID(ctx context.Context, id string) (entity.Inquiry, error)

	// Create stores a new lead.
	Create(ctx context.Context, inquiry entity.Inquiry) error

	// Update replaces the stored lead with the same identifier.
	Update(ctx context.Context, inquiry entity.Inquiry) error

	// Delete removes the lead with the given identifier.
	Delete(ctx context.Context, id string) error

	// CountByStatus returns total leads and the per-status breakdown.
	CountByStatus(ctx context.Context) (total int, statuses map[string]int, err error)
}
