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

	"github.com/google/uuid"
)

type inquiryService struct {
	inquiryRepo  repository.InquiryRepository
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
}

// NewInquiryService creates a new lead management service.
func NewInquiryService(
	inquiryRepo repository.InquiryRepository,
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
) usecase.InquiryUsecase {
	return &inquiryService{
		inquiryRepo:  inquiryRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
	}
}

// Submit records a lead from the actor against a listing. The listing's
// owner becomes the receiving party.
func (s *inquiryService) Submit(ctx context.Context, actor usecase.Actor, draft usecase.InquiryDraft) (entity.Inquiry, error) {
	property, err := s.propertyRepo.FindByID(ctx, draft.PropertyID)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return entity.Inquiry{}, domainerrors.ErrPropertyNotFound
		}

		return entity.Inquiry{}, fmt.Errorf("failed to find property: %w", err)
	}

	sender, err := s.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return entity.Inquiry{}, domainerrors.ErrUserNotFound
		}

		return entity.Inquiry{}, fmt.Errorf("failed to find sender: %w", err)
	}

	inquiry := entity.Inquiry{
		ID:     uuid.NewString(),
		Sender: entity.PartyRef{ID: sender.ID, Name: sender.Name, Email: sender.Email},
		Property: entity.PropertyRef{
			ID:    property.ID,
			Title: property.Title,
		},
		Name:      draft.Name,
		Email:     draft.Email,
		Phone:     draft.Phone,
		Message:   draft.Message,
		Status:    entity.InquiryPending,
		CreatedAt: time.Now(),
	}

	if property.Owner != nil {
		owner, err := s.userRepo.FindByID(ctx, property.Owner.ID)
		if err == nil {
			inquiry.Owner = entity.PartyRef{ID: owner.ID, Name: owner.Name, Email: owner.Email}
		}
	}

	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return entity.Inquiry{}, fmt.Errorf("failed to create inquiry: %w", err)
	}

	return inquiry, nil
}

// Sent returns leads the actor submitted.
func (s *inquiryService) Sent(ctx context.Context, actor usecase.Actor) ([]entity.Inquiry, error) {
	inquiries, err := s.inquiryRepo.ListBySender(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent inquiries: %w", err)
	}

	return inquiries, nil
}

// Received returns leads against the actor's listings. Admins see every
// lead through this path too.
func (s *inquiryService) Received(ctx context.Context, actor usecase.Actor) ([]entity.Inquiry, error) {
	inquiries, err := s.inquiryRepo.ListByOwner(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list received inquiries: %w", err)
	}

	return inquiries, nil
}

// SetStatus transitions a received lead.
func (s *inquiryService) SetStatus(ctx context.Context, actor usecase.Actor, id string, status entity.InquiryStatus) (entity.Inquiry, error) {
	if !status.IsValid() {
		return entity.Inquiry{}, domainerrors.ErrInvalidInquiryStatus
	}

	inquiry, err := s.findInquiry(ctx, id)
	if err != nil {
		return entity.Inquiry{}, err
	}

	if !actor.IsAdmin() && inquiry.Owner.ID != actor.ID {
		return entity.Inquiry{}, domainerrors.ErrNotInquiryParty
	}

	inquiry.Status = status

	if err := s.inquiryRepo.Update(ctx, inquiry); err != nil {
		return entity.Inquiry{}, fmt.Errorf("failed to update inquiry: %w", err)
	}

	return inquiry, nil
}

// Delete removes a lead; only a party to it or an admin may.
func (s *inquiryService) Delete(ctx context.Context, actor usecase.Actor, id string) error {
	inquiry, err := s.findInquiry(ctx, id)
	if err != nil {
		return err
	}

	if !actor.IsAdmin() && inquiry.Owner.ID != actor.ID && inquiry.Sender.ID != actor.ID {
		return domainerrors.ErrNotInquiryParty
	}

	if err := s.inquiryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete inquiry: %w", err)
	}

	return nil
}

func (s *inquiryService) findInquiry(ctx context.Context, id string) (entity.Inquiry, error) {
	inquiry, err := s.inquiryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInquiryNotFound) {
			return entity.Inquiry{}, domainerrors.ErrInquiryNotFound
		}

		return entity.Inquiry{}, fmt.Errorf("failed to find inquiry: %w", err)
	}

	return inquiry, nil
}
