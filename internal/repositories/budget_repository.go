package repositories

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

type BudgetRepository interface {
	FindByTripId(ctx context.Context, tripId string) (*db_models.Budget, error)
	Insert(ctx context.Context, budget *db_models.Budget) error
	// UpdateTotalCost overwrites the stored total and returns the updated row.
	UpdateTotalCost(ctx context.Context, tripId string, totalCost decimal.Decimal) (*db_models.Budget, error)
}

type budgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) BudgetRepository {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) FindByTripId(ctx context.Context, tripId string) (*db_models.Budget, error) {
	var budget db_models.Budget
	err := r.db.WithContext(ctx).First(&budget, "trip_id = ?", tripId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &budget, nil
}

func (r *budgetRepository) Insert(ctx context.Context, budget *db_models.Budget) error {
	return r.db.WithContext(ctx).Create(budget).Error
}

func (r *budgetRepository) UpdateTotalCost(ctx context.Context, tripId string, totalCost decimal.Decimal) (*db_models.Budget, error) {
	var budget db_models.Budget
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&budget, "trip_id = ?", tripId).Error; err != nil {
			return err
		}
		budget.TotalCost = totalCost
		return tx.Save(&budget).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &budget, nil
}
