package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

type StopRepository interface {
	Insert(ctx context.Context, stop *db_models.TripStop) error
	FindByTripId(ctx context.Context, tripId string) ([]db_models.TripStop, error)
	FindById(ctx context.Context, stopId string) (*db_models.TripStop, error)
	Update(ctx context.Context, stop *db_models.TripStop) error
	Delete(ctx context.Context, stopId string) error
}

type stopRepository struct {
	db *gorm.DB
}

func NewStopRepository(db *gorm.DB) StopRepository {
	return &stopRepository{db: db}
}

func (r *stopRepository) Insert(ctx context.Context, stop *db_models.TripStop) error {
	return r.db.WithContext(ctx).Create(stop).Error
}

func (r *stopRepository) FindByTripId(ctx context.Context, tripId string) ([]db_models.TripStop, error) {
	var stops []db_models.TripStop
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripId).
		Order("start_date ASC").
		Find(&stops).Error
	if err != nil {
		return nil, err
	}
	return stops, nil
}

func (r *stopRepository) FindById(ctx context.Context, stopId string) (*db_models.TripStop, error) {
	var stop db_models.TripStop
	err := r.db.WithContext(ctx).First(&stop, "id = ?", stopId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stop, nil
}

func (r *stopRepository) Update(ctx context.Context, stop *db_models.TripStop) error {
	return r.db.WithContext(ctx).Save(stop).Error
}

// Delete removes the stop and its activities together.
func (r *stopRepository) Delete(ctx context.Context, stopId string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_stop_id = ?", stopId).
			Delete(&db_models.Activity{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", stopId).
			Delete(&db_models.TripStop{}).Error
	})
}
