package usecase

import (
	"context"

	"propmart/internal/domain/entity"
)

// RegisterInput is the validated signup payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
	Agency   string
}

// Session is an issued access token plus the authenticated account.
type Session struct {
	Token string
	User  entity.User
}

// AuthUsecase defines the interface for authentication use cases.
type AuthUsecase interface {
	// Register creates an account and logs it in.
	Register(ctx context.Context, input RegisterInput) (Session, error)

	// Login exchanges credentials for a session.
	Login(ctx context.Context, email, password string) (Session, error)
}
