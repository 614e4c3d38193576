package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainerrors "propmart/internal/domain/errors"
	"propmart/internal/domain/entity"
	"propmart/internal/domain/repository"
	"propmart/internal/domain/service"
	"propmart/internal/usecase"

	"github.com/google/uuid"
)

type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokens   service.TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, hasher service.PasswordHasher, tokens service.TokenService) usecase.AuthUsecase {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// Register creates an account and logs it in.
func (s *authService) Register(ctx context.Context, input usecase.RegisterInput) (usecase.Session, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return usecase.Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}

	user := entity.User{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Agency:    input.Agency,
		Status:    entity.UserActive,
		Role:      role,
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, repository.UserRecord{User: user, PasswordHash: hash}); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return usecase.Session{}, domainerrors.ErrEmailTaken
		}

		return usecase.Session{}, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return usecase.Session{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return usecase.Session{Token: token, User: user}, nil
}

// Login exchanges credentials for a session. A missing account and a
// wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (usecase.Session, error) {
	record, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return usecase.Session{}, domainerrors.ErrInvalidCredentials
		}

		return usecase.Session{}, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Check(password, record.PasswordHash) {
		return usecase.Session{}, domainerrors.ErrInvalidCredentials
	}

	if record.User.Status != entity.UserActive {
		return usecase.Session{}, domainerrors.ErrAccountInactive
	}

	token, err := s.tokens.GenerateToken(record.User)
	if err != nil {
		return usecase.Session{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return usecase.Session{Token: token, User: record.User}, nil
}
