package memory

import (
	"context"
	"strings"
	"sync"

	"propmart/internal/domain/entity"
	"propmart/internal/domain/repository"
)

type userRepository struct {
	mu      sync.RWMutex
	records []repository.UserRecord
}

// NewUserRepository creates an empty in-memory account store.
func NewUserRepository() repository.UserRepository {
	return &userRepository{}
}

func (r *userRepository) List(_ context.Context) ([]entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.User, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.User
	}

	return out, nil
}

func (r *userRepository) ListByRole(_ context.Context, role entity.Role) ([]entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entity.User
	for _, rec := range r.records {
		if rec.User.Role == role {
			out = append(out, rec.User)
		}
	}

	return out, nil
}

func (r *userRepository) FindByID(_ context.Context, id string) (entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.User.ID == id {
			return rec.User, nil
		}
	}

	return entity.User{}, repository.ErrUserNotFound
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (repository.UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if strings.EqualFold(rec.User.Email, email) {
			return rec, nil
		}
	}

	return repository.UserRecord{}, repository.ErrUserNotFound
}

func (r *userRepository) Create(_ context.Context, record repository.UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if strings.EqualFold(rec.User.Email, record.User.Email) {
			return repository.ErrEmailTaken
		}
	}

	r.records = append(r.records, record)

	return nil
}

func (r *userRepository) Update(_ context.Context, user entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].User.ID == user.ID {
			r.records[i].User = user

			return nil
		}
	}

	return repository.ErrUserNotFound
}

func (r *userRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].User.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)

			return nil
		}
	}

	return repository.ErrUserNotFound
}

func (r *userRepository) CountByRole(_ context.Context) (int, map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roles := make(map[string]int)
	for _, rec := range r.records {
		roles[rec.User.Role.String()]++
	}

	return len(r.records), roles, nil
}
