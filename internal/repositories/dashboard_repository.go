package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

type DashboardRepository interface {
	CountTripsByUser(ctx context.Context, userId string) (int64, error)
	CountUpcomingTripsByUser(ctx context.Context, userId string, after time.Time) (int64, error)
	TotalBudgetByUser(ctx context.Context, userId string) (decimal.Decimal, error)
	RecentTripsByUser(ctx context.Context, userId string, limit int) ([]db_models.Trip, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountTripsByUser(ctx context.Context, userId string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Trip{}).
		Where("user_id = ?", userId).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountUpcomingTripsByUser(ctx context.Context, userId string, after time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Trip{}).
		Where("user_id = ? AND start_date > ?", userId, after).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) TotalBudgetByUser(ctx context.Context, userId string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&db_models.Budget{}).
		Select("COALESCE(SUM(budgets.total_cost), 0)").
		Joins("JOIN trips ON budgets.trip_id = trips.id").
		Where("trips.user_id = ?", userId).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *dashboardRepository) RecentTripsByUser(ctx context.Context, userId string, limit int) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Limit(limit).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}
