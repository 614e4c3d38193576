package impl

import (
	"context"
	"fmt"

	"propmart/internal/domain/entity"
	"propmart/internal/domain/repository"
	"propmart/internal/usecase"
)

type dashboardService struct {
	userRepo     repository.UserRepository
	propertyRepo repository.PropertyRepository
	inquiryRepo  repository.InquiryRepository
}

// NewDashboardService creates a new stats aggregation service.
func NewDashboardService(
	userRepo repository.UserRepository,
	propertyRepo repository.PropertyRepository,
	inquiryRepo repository.InquiryRepository,
) usecase.DashboardUsecase {
	return &dashboardService{
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
		inquiryRepo:  inquiryRepo,
	}
}

// Stats aggregates accounts, listings and leads into one snapshot.
func (s *dashboardService) Stats(ctx context.Context) (entity.DashboardStats, error) {
	totalUsers, roles, err := s.userRepo.CountByRole(ctx)
	if err != nil {
		return entity.DashboardStats{}, fmt.Errorf("failed to count users: %w", err)
	}

	totalProperties, pending, err := s.propertyRepo.Count(ctx)
	if err != nil {
		return entity.DashboardStats{}, fmt.Errorf("failed to count properties: %w", err)
	}

	totalInquiries, statuses, err := s.inquiryRepo.CountByStatus(ctx)
	if err != nil {
		return entity.DashboardStats{}, fmt.Errorf("failed to count inquiries: %w", err)
	}

	return entity.DashboardStats{
		TotalUsers:             totalUsers,
		TotalProperties:        totalProperties,
		TotalInquiries:         totalInquiries,
		PendingPropertiesCount: pending,
		Users:                  entity.UserStats{Total: totalUsers, Roles: roles},
		Properties:             entity.PropertyStats{Total: totalProperties, Pending: pending},
		Inquiries:              entity.InquiryStats{Total: totalInquiries, Statuses: statuses},
	}, nil
}
