package usecase

import (
	"context"

	"propmart/internal/domain/entity"
)

// DashboardUsecase defines the interface for the admin stats snapshot.
type DashboardUsecase interface {
	// Stats aggregates accounts, listings and leads into one snapshot.
	Stats(ctx context.Context) (entity.DashboardStats, error)
}
