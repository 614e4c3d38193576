// Package impl contains the concrete application services behind the
// usecase interfaces.
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

type propertyService struct {
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
}

// NewPropertyService creates a new listing management service.
func NewPropertyService(propertyRepo repository.PropertyRepository, userRepo repository.UserRepository) usecase.PropertyUsecase {
	return &propertyService{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
	}
}

// Browse returns listings matching the query.
func (s *propertyService) Browse(ctx context.Context, query repository.PropertyQuery) ([]entity.Property, error) {
	properties, err := s.propertyRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	return properties, nil
}

// OwnListings returns the actor's own listings.
func (s *propertyService) OwnListings(ctx context.Context, actor usecase.Actor) ([]entity.Property, error) {
	properties, err := s.propertyRepo.ListByOwner(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties by owner: %w", err)
	}

	return properties, nil
}

// GetByID returns one listing.
func (s *propertyService) GetByID(ctx context.Context, id string) (entity.Property, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return entity.Property{}, domainerrors.ErrPropertyNotFound
		}

		return entity.Property{}, fmt.Errorf("failed to find property: %w", err)
	}

	return property, nil
}

// Create stores a new listing owned by the actor. New listings always
// start Pending regardless of who submits them.
func (s *propertyService) Create(ctx context.Context, actor usecase.Actor, draft usecase.PropertyDraft) (entity.Property, error) {
	owner, err := s.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return entity.Property{}, domainerrors.ErrUserNotFound
		}

		return entity.Property{}, fmt.Errorf("failed to find owner: %w", err)
	}

	property := entity.Property{
		ID:              uuid.NewString(),
		Title:           draft.Title,
		Description:     draft.Description,
		Price:           draft.Price,
		Location:        draft.Location,
		PropertyType:    draft.PropertyType,
		TransactionType: draft.TransactionType,
		Status:          entity.PropertyPending,
		Bedrooms:        draft.Bedrooms,
		Bathrooms:       draft.Bathrooms,
		SquareFeet:      draft.SquareFeet,
		Owner: &entity.OwnerRef{
			ID:   owner.ID,
			Name: owner.Name,
			Role: owner.Role.String(),
		},
		CreatedAt: time.Now(),
	}

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return entity.Property{}, fmt.Errorf("failed to create property: %w", err)
	}

	return property, nil
}

// Update replaces a listing's fields; only the owner or an admin may.
// An edited listing goes back to Pending for re-review.
func (s *propertyService) Update(ctx context.Context, actor usecase.Actor, id string, draft usecase.PropertyDraft) (entity.Property, error) {
	property, err := s.GetByID(ctx, id)
	if err != nil {
		return entity.Property{}, err
	}

	if !s.canManage(actor, property) {
		return entity.Property{}, domainerrors.ErrNotListingOwner
	}

	property.Title = draft.Title
	property.Description = draft.Description
	property.Price = draft.Price
	property.Location = draft.Location
	property.PropertyType = draft.PropertyType
	property.TransactionType = draft.TransactionType
	property.Bedrooms = draft.Bedrooms
	property.Bathrooms = draft.Bathrooms
	property.SquareFeet = draft.SquareFeet
	property.Status = entity.PropertyPending

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return entity.Property{}, fmt.Errorf("failed to update property: %w", err)
	}

	return property, nil
}

// Delete removes a listing; only the owner or an admin may.
func (s *propertyService) Delete(ctx context.Context, actor usecase.Actor, id string) error {
	property, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !s.canManage(actor, property) {
		return domainerrors.ErrNotListingOwner
	}

	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	return nil
}

// Approve transitions a pending listing to Approved. Role gating happens
// in the router middleware.
func (s *propertyService) Approve(ctx context.Context, id string) (entity.Property, error) {
	property, err := s.GetByID(ctx, id)
	if err != nil {
		return entity.Property{}, err
	}

	property.Status = entity.PropertyApproved

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return entity.Property{}, fmt.Errorf("failed to approve property: %w", err)
	}

	return property, nil
}

func (s *propertyService) canManage(actor usecase.Actor, property entity.Property) bool {
	if actor.IsAdmin() {
		return true
	}

	return property.Owner != nil && property.Owner.ID == actor.ID
}
