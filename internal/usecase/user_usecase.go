package usecase

import (
	"context"

	"propmart/internal/domain/entity"
)

// UserPatch is a partial account update; zero-valued fields are left
// unchanged.
type UserPatch struct {
	Name   string
	Email  string
	Agency string
	Status entity.UserStatus
	Role   entity.Role
}

// UserUsecase defines the interface for account management use cases.
type UserUsecase interface {
	// List returns every account (admin portal).
	List(ctx context.Context) ([]entity.User, error)

	// Brokers returns broker accounts only.
	Brokers(ctx context.Context) ([]entity.User, error)

	// Update applies a partial update; only the account itself or an
	// admin may.
	Update(ctx context.Context, actor Actor, id string, patch UserPatch) (entity.User, error)

	// Delete removes an account; only the account itself or an admin may.
	Delete(ctx context.Context, actor Actor, id string) error
}
