package usecase

import (
	"context"

	"propmart/internal/domain/entity"
)

// InquiryDraft is the validated payload for submitting a lead.
type InquiryDraft struct {
	PropertyID string
	Name       string
	Email      string
	Phone      string
	Message    string
}

// InquiryUsecase defines the interface for lead management use cases.
type InquiryUsecase interface {
	// Submit records a lead from the actor against a listing.
	Submit(ctx context.Context, actor Actor, draft InquiryDraft) (entity.Inquiry, error)

	// Sent returns leads the actor submitted.
	Sent(ctx context.Context, actor Actor) ([]entity.Inquiry, error)

	// Received returns leads against the actor's listings.
	Received(ctx context.Context, actor Actor) ([]entity.Inquiry, error)

	// SetStatus transitions a received lead; only the listing owner or
	// an admin may.
	SetStatus(ctx context.Context, actor Actor, id string, status entity.InquiryStatus) (entity.Inquiry, error)

	// Delete removes a lead; only a party to it or an admin may.
	Delete(ctx context.Context, actor Actor, id string) error
}
