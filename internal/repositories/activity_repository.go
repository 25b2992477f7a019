package repositories

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

type ActivityRepository interface {
	Insert(ctx context.Context, activity *db_models.Activity) error
	FindByStopId(ctx context.Context, stopId string) ([]db_models.Activity, error)
	FindById(ctx context.Context, activityId string) (*db_models.Activity, error)
	Update(ctx context.Context, activity *db_models.Activity) error
	Delete(ctx context.Context, activityId string) error
	// SumCostByTripId sums activity costs across every stop of the trip.
	SumCostByTripId(ctx context.Context, tripId string) (decimal.Decimal, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Insert(ctx context.Context, activity *db_models.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) FindByStopId(ctx context.Context, stopId string) ([]db_models.Activity, error) {
	var activities []db_models.Activity
	err := r.db.WithContext(ctx).
		Where("trip_stop_id = ?", stopId).
		Order("created_at ASC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) FindById(ctx context.Context, activityId string) (*db_models.Activity, error) {
	var activity db_models.Activity
	err := r.db.WithContext(ctx).First(&activity, "id = ?", activityId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) Update(ctx context.Context, activity *db_models.Activity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

func (r *activityRepository) Delete(ctx context.Context, activityId string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", activityId).
		Delete(&db_models.Activity{}).Error
}

func (r *activityRepository) SumCostByTripId(ctx context.Context, tripId string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&db_models.Activity{}).
		Select("COALESCE(SUM(activities.cost), 0)").
		Joins("JOIN trip_stops ON activities.trip_stop_id = trip_stops.id").
		Where("trip_stops.trip_id = ?", tripId).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
