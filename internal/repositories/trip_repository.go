package repositories

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

type TripRepository interface {
	// InsertWithBudget creates the trip and its zero-valued budget row together.
	InsertWithBudget(ctx context.Context, trip *db_models.Trip) error
	FindByUserId(ctx context.Context, userId string) ([]db_models.Trip, error)
	FindByIdAndUserId(ctx context.Context, tripId string, userId string) (*db_models.Trip, error)
	Update(ctx context.Context, trip *db_models.Trip) error
	Delete(ctx context.Context, tripId string) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) InsertWithBudget(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}
		budget := db_models.Budget{
			TripID:    trip.ID,
			TotalCost: decimal.Zero,
		}
		return tx.Create(&budget).Error
	})
}

func (r *tripRepository) FindByUserId(ctx context.Context, userId string) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) FindByIdAndUserId(ctx context.Context, tripId string, userId string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tripId, userId).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) Update(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

// Delete removes the trip with its stops, their activities and its budget in
// one transaction, mirroring the FK cascade for engines that lack it.
func (r *tripRepository) Delete(ctx context.Context, tripId string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subStopIDs := tx.Model(&db_models.TripStop{}).
			Select("id").
			Where("trip_id = ?", tripId)

		if err := tx.Where("trip_stop_id IN (?)", subStopIDs).
			Delete(&db_models.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", tripId).
			Delete(&db_models.TripStop{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", tripId).
			Delete(&db_models.Budget{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", tripId).
			Delete(&db_models.Trip{}).Error
	})
}
