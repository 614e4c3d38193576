package repository

import (
	"context"

	"propmart/internal/domain/entity"
	"propmart/internal/errors"
)

var (
	// ErrUserNotFound is returned when no account matches the identifier.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when registering an email that already
	// has an account.
	ErrEmailTaken = errors.New("email already registered")
)

// UserRecord pairs the public account with its stored credential hash.
// Only the auth paths see the hash; every listing API works with
// entity.User.
type UserRecord struct {
	User         entity.User
	PasswordHash string
}

// UserRepository stores marketplace accounts.
type UserRepository interface {
	// List returns every account, in insertion order.
	List(ctx context.Context) ([]entity.User, error)

	// ListByRole returns accounts holding the given role.
	ListByRole(ctx context.Context, role entity.Role) ([]entity.User, error)

	// FindByID returns the account with the given identifier.
	FindByID(ctx context.Context, id string) (entity.User, error)

	// FindByEmail returns the full record for a login email.
	FindByEmail(ctx context.Context, email string) (UserRecord, error)

	// Create stores a new account with its credential hash.
	Create(ctx context.Context, record UserRecord) error

	// Update replaces the stored account with the same identifier.
	Update(ctx context.Context, user entity.User) error

	// Delete removes the account with the given identifier.
	Delete(ctx context.Context, id string) error

	// CountByRole returns total accounts and the per-role breakdown.
	CountByRole(ctx context.Context) (total int, roles map[string]int, err error)
}
