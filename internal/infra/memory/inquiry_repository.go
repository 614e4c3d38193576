package memory

import (
	"context"
	"sync"

	"propmart/internal/domain/entity"
	"propmart/internal/domain/repository"
)

type inquiryRepository struct {
	mu    sync.RWMutex
	items []entity.Inquiry
}

// NewInquiryRepository creates an empty in-memory lead store.
func NewInquiryRepository() repository.InquiryRepository {
	return &inquiryRepository{}
}

func (r *inquiryRepository) ListBySender(_ context.Context, senderID string) ([]entity.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entity.Inquiry
	for _, inq := range r.items {
		if inq.Sender.ID == senderID {
			out = append(out, inq)
		}
	}

	return out, nil
}

func (r *inquiryRepository) ListByOwner(_ context.Context, ownerID string) ([]entity.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entity.Inquiry
	for _, inq := range r.items {
		if inq.Owner.ID == ownerID {
			out = append(out, inq)
		}
	}

	return out, nil
}

func (r *inquiryRepository) FindByID(_ context.Context, id string) (entity.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, inq := range r.items {
		if inq.ID == id {
			return inq, nil
		}
	}

	return entity.Inquiry{}, repository.ErrInquiryNotFound
}

func (r *inquiryRepository) Create(_ context.Context, inquiry entity.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, inquiry)

	return nil
}

func (r *inquiryRepository) Update(_ context.Context, inquiry entity.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == inquiry.ID {
			r.items[i] = inquiry

			return nil
		}
	}

	return repository.ErrInquiryNotFound
}

func (r *inquiryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)

			return nil
		}
	}

	return repository.ErrInquiryNotFound
}

func (r *inquiryRepository) CountByStatus(_ context.Context) (int, map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	statuses := make(map[string]int)
	for _, inq := range r.items {
		statuses[inq.Status.String()]++
	}

	return len(r.items), statuses, nil
}
