package impl

import (
	"context"
	"errors"
	"fmt"

	domainerrors "propmart/internal/domain/errors"
	"propmart/internal/domain/entity"
	"propmart/internal/domain/repository"
	"propmart/internal/usecase"
)

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new account management service.
func NewUserService(userRepo repository.UserRepository) usecase.UserUsecase {
	return &userService{userRepo: userRepo}
}

// List returns every account.
func (s *userService) List(ctx context.Context) ([]entity.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// Brokers returns broker accounts only.
func (s *userService) Brokers(ctx context.Context) ([]entity.User, error) {
	users, err := s.userRepo.ListByRole(ctx, entity.RoleBroker)
	if err != nil {
		return nil, fmt.Errorf("failed to list brokers: %w", err)
	}

	return users, nil
}

// Update applies a partial update; only the account itself or an admin may.
func (s *userService) Update(ctx context.Context, actor usecase.Actor, id string, patch usecase.UserPatch) (entity.User, error) {
	if !actor.IsAdmin() && actor.ID != id {
		return entity.User{}, domainerrors.ErrPermissionDenied.WithDetails("cannot modify another account")
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return entity.User{}, domainerrors.ErrUserNotFound
		}

		return entity.User{}, fmt.Errorf("failed to find user: %w", err)
	}

	if patch.Name != "" {
		user.Name = patch.Name
	}
	if patch.Email != "" {
		user.Email = patch.Email
	}
	if patch.Agency != "" {
		user.Agency = patch.Agency
	}
	if patch.Status != "" {
		user.Status = patch.Status
	}
	// Only admins may change roles.
	if patch.Role != "" && actor.IsAdmin() {
		user.Role = patch.Role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return entity.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// Delete removes an account; only the account itself or an admin may.
func (s *userService) Delete(ctx context.Context, actor usecase.Actor, id string) error {
	if !actor.IsAdmin() && actor.ID != id {
		return domainerrors.ErrPermissionDenied.WithDetails("cannot delete another account")
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
