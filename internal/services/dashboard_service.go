package services

import (
	"context"

	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

const recentTripLimit = 5

type DashboardServiceInterface interface {
	BuildSummary(ctx context.Context, userId string) (*response_models.DashboardResponse, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
}

func NewDashboardService(repo repositories.DashboardRepository) DashboardServiceInterface {
	return &dashboardService{repo: repo}
}

func (s *dashboardService) BuildSummary(ctx context.Context, userId string) (*response_models.DashboardResponse, error) {
	totalTrips, err := s.repo.CountTripsByUser(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalBudget, err := s.repo.TotalBudgetByUser(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	upcoming, err := s.repo.CountUpcomingTripsByUser(ctx, userId, utils.Today())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	recent, err := s.repo.RecentTripsByUser(ctx, userId, recentTripLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.DashboardResponse{
		Summary: response_models.DashboardSummary{
			TotalTrips:    totalTrips,
			TotalBudget:   totalBudget.StringFixed(2),
			UpcomingTrips: upcoming,
		},
		RecentTrips: response_models.FromTrips(recent),
	}, nil
}
