package memory

import (
	"context"
	"time"

	"propmart/internal/domain/entity"
	"propmart/internal/domain/repository"
	"propmart/internal/domain/service"

	"github.com/pkg/errors"
)

// SeedAccounts are the fixed development logins, all with the password
// "password123".
var SeedAccounts = []entity.User{
	{ID: "seed-admin", Name: "Site Admin", Email: "admin@propmart.dev", Status: entity.UserActive, Role: entity.RoleAdmin},
	{ID: "seed-broker", Name: "Asha Verma", Email: "broker@propmart.dev", Agency: "Verma Estates", Status: entity.UserActive, Role: entity.RoleBroker},
	{ID: "seed-user", Name: "Rohan Iyer", Email: "user@propmart.dev", Status: entity.UserActive, Role: entity.RoleUser},
}

const seedPassword = "password123"

// Seed loads fixed development data: three accounts, a handful of
// listings in mixed review states and one open lead.
func Seed(
	ctx context.Context,
	userRepo repository.UserRepository,
	propertyRepo repository.PropertyRepository,
	inquiryRepo repository.InquiryRepository,
	hasher service.PasswordHasher,
) error {
	hash, err := hasher.Hash(seedPassword)
	if err != nil {
		return errors.Wrap(err, "hash seed password")
	}

	now := time.Now()
	for _, account := range SeedAccounts {
		account.CreatedAt = now
		if err := userRepo.Create(ctx, repository.UserRecord{User: account, PasswordHash: hash}); err != nil {
			return errors.Wrapf(err, "seed account %s", account.Email)
		}
	}

	broker := &entity.OwnerRef{ID: "seed-broker", Name: "Asha Verma", Role: entity.RoleBroker.String()}
	listings := []entity.Property{
		{
			ID:              "seed-prop-1",
			Title:           "2BHK Apartment near Metro",
			Description:     "Bright east-facing flat with covered parking.",
			Price:           4500000,
			Location:        entity.Location{City: "Pune", District: "Pune", Area: "Baner", FullAddress: "12 Orchid Towers, Baner", Pincode: "411045"},
			PropertyType:    "Apartment",
			TransactionType: entity.TransactionSale,
			Status:          entity.PropertyApproved,
			Bedrooms:        2,
			Bathrooms:       2,
			SquareFeet:      980,
			Owner:           broker,
			CreatedAt:       now,
		},
		{
			ID:              "seed-prop-2",
			Title:           "3BHK Villa in Saket",
			Description:     "Independent villa with a private garden.",
			Price:           85000,
			Location:        entity.Location{City: "Delhi", District: "South Delhi", Area: "Saket", FullAddress: "4 Green Lane, Saket", Pincode: "110017"},
			PropertyType:    "Villa",
			TransactionType: entity.TransactionRent,
			Status:          entity.PropertyApproved,
			Bedrooms:        3,
			Bathrooms:       3,
			SquareFeet:      2200,
			Owner:           broker,
			CreatedAt:       now,
		},
		{
			ID:              "seed-prop-3",
			Title:           "Commercial Space on MG Road",
			Description:     "Ground floor retail space awaiting review.",
			Price:           12000000,
			Location:        entity.Location{City: "Bengaluru", District: "Bengaluru Urban", Area: "MG Road", FullAddress: "88 MG Road", Pincode: "560001"},
			PropertyType:    "Commercial",
			TransactionType: entity.TransactionLease,
			Status:          entity.PropertyPending,
			Bathrooms:       1,
			SquareFeet:      1500,
			Owner:           broker,
			CreatedAt:       now,
		},
	}
	for _, listing := range listings {
		if err := propertyRepo.Create(ctx, listing); err != nil {
			return errors.Wrapf(err, "seed listing %s", listing.ID)
		}
	}

	lead := entity.Inquiry{
		ID:        "seed-inquiry-1",
		Sender:    entity.PartyRef{ID: "seed-user", Name: "Rohan Iyer", Email: "user@propmart.dev"},
		Owner:     entity.PartyRef{ID: "seed-broker", Name: "Asha Verma", Email: "broker@propmart.dev"},
		Property:  entity.PropertyRef{ID: "seed-prop-1", Title: "2BHK Apartment near Metro"},
		Name:      "Rohan Iyer",
		Email:     "user@propmart.dev",
		Phone:     "9876543210",
		Message:   "Is this still available for a site visit this weekend?",
		Status:    entity.InquiryPending,
		CreatedAt: now,
	}
	if err := inquiryRepo.Create(ctx, lead); err != nil {
		return errors.Wrap(err, "seed inquiry")
	}

	return nil
}
