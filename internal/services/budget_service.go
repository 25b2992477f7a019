package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

// BudgetServiceInterface keeps a trip's stored total consistent with either
// the live sum of its activities' costs or an explicit user-set amount.
// Callers are expected to have verified trip ownership already.
type BudgetServiceInterface interface {
	// Recompute sums activity costs across the trip's stops and overwrites
	// the budget row with the result, creating the row if missing. It is
	// idempotent between activity mutations.
	Recompute(ctx context.Context, tripId string) (*response_models.BudgetResponse, error)
	// SetCeiling overwrites the stored total with an explicit amount. The
	// next activity mutation's recompute replaces it again: last writer wins.
	SetCeiling(ctx context.Context, tripId string, amount decimal.Decimal) (*response_models.BudgetResponse, error)
	// GetBudget returns the budget row, creating a zero-valued one on first
	// access.
	GetBudget(ctx context.Context, tripId string) (*response_models.BudgetResponse, error)
}

type BudgetService struct {
	budgetRepo   repositories.BudgetRepository
	activityRepo repositories.ActivityRepository
}

func NewBudgetService(budgetRepo repositories.BudgetRepository, activityRepo repositories.ActivityRepository) BudgetServiceInterface {
	return &BudgetService{
		budgetRepo:   budgetRepo,
		activityRepo: activityRepo,
	}
}

func (b *BudgetService) Recompute(ctx context.Context, tripId string) (*response_models.BudgetResponse, error) {
	totalCost, err := b.activityRepo.SumCostByTripId(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return b.writeTotal(ctx, tripId, totalCost)
}

func (b *BudgetService) SetCeiling(ctx context.Context, tripId string, amount decimal.Decimal) (*response_models.BudgetResponse, error) {
	if amount.IsNegative() {
		return nil, utils.ErrInvalidInput
	}
	return b.writeTotal(ctx, tripId, amount)
}

func (b *BudgetService) GetBudget(ctx context.Context, tripId string) (*response_models.BudgetResponse, error) {
	budget, err := b.budgetRepo.FindByTripId(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if budget == nil {
		budget, err = b.createRow(ctx, tripId, decimal.Zero)
		if err != nil {
			return nil, err
		}
	}

	resp := response_models.FromBudget(budget)
	return &resp, nil
}

func (b *BudgetService) writeTotal(ctx context.Context, tripId string, totalCost decimal.Decimal) (*response_models.BudgetResponse, error) {
	budget, err := b.budgetRepo.UpdateTotalCost(ctx, tripId, totalCost)
	if err != nil {
		return nil, utils.TranslateDBError(err, utils.ErrConflict)
	}
	if budget == nil {
		budget, err = b.createRow(ctx, tripId, totalCost)
		if err != nil {
			return nil, err
		}
	}

	resp := response_models.FromBudget(budget)
	return &resp, nil
}

func (b *BudgetService) createRow(ctx context.Context, tripId string, totalCost decimal.Decimal) (*db_models.Budget, error) {
	id, err := uuid.Parse(tripId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	budget := &db_models.Budget{
		TripID:    id,
		TotalCost: totalCost,
	}
	if err := b.budgetRepo.Insert(ctx, budget); err != nil {
		return nil, utils.TranslateDBError(err, utils.ErrConflict)
	}
	return budget, nil
}
