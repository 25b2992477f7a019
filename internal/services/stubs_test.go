package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/response_models"
)

type stubTripRepo struct {
	insertWithBudgetFn  func(ctx context.Context, trip *db_models.Trip) error
	findByUserIdFn      func(ctx context.Context, userId string) ([]db_models.Trip, error)
	findByIdAndUserIdFn func(ctx context.Context, tripId, userId string) (*db_models.Trip, error)
	updateFn            func(ctx context.Context, trip *db_models.Trip) error
	deleteFn            func(ctx context.Context, tripId string) error
}

func (s stubTripRepo) InsertWithBudget(ctx context.Context, trip *db_models.Trip) error {
	if s.insertWithBudgetFn == nil {
		return nil
	}
	return s.insertWithBudgetFn(ctx, trip)
}

func (s stubTripRepo) FindByUserId(ctx context.Context, userId string) ([]db_models.Trip, error) {
	if s.findByUserIdFn == nil {
		return nil, nil
	}
	return s.findByUserIdFn(ctx, userId)
}

func (s stubTripRepo) FindByIdAndUserId(ctx context.Context, tripId, userId string) (*db_models.Trip, error) {
	if s.findByIdAndUserIdFn == nil {
		return nil, nil
	}
	return s.findByIdAndUserIdFn(ctx, tripId, userId)
}

func (s stubTripRepo) Update(ctx context.Context, trip *db_models.Trip) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, trip)
}

func (s stubTripRepo) Delete(ctx context.Context, tripId string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, tripId)
}

type stubStopRepo struct {
	insertFn       func(ctx context.Context, stop *db_models.TripStop) error
	findByTripIdFn func(ctx context.Context, tripId string) ([]db_models.TripStop, error)
	findByIdFn     func(ctx context.Context, stopId string) (*db_models.TripStop, error)
	updateFn       func(ctx context.Context, stop *db_models.TripStop) error
	deleteFn       func(ctx context.Context, stopId string) error
}

func (s stubStopRepo) Insert(ctx context.Context, stop *db_models.TripStop) error {
	if s.insertFn == nil {
		return nil
	}
	return s.insertFn(ctx, stop)
}

func (s stubStopRepo) FindByTripId(ctx context.Context, tripId string) ([]db_models.TripStop, error) {
	if s.findByTripIdFn == nil {
		return nil, nil
	}
	return s.findByTripIdFn(ctx, tripId)
}

func (s stubStopRepo) FindById(ctx context.Context, stopId string) (*db_models.TripStop, error) {
	if s.findByIdFn == nil {
		return nil, nil
	}
	return s.findByIdFn(ctx, stopId)
}

func (s stubStopRepo) Update(ctx context.Context, stop *db_models.TripStop) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, stop)
}

func (s stubStopRepo) Delete(ctx context.Context, stopId string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, stopId)
}

type stubActivityRepo struct {
	insertFn          func(ctx context.Context, activity *db_models.Activity) error
	findByStopIdFn    func(ctx context.Context, stopId string) ([]db_models.Activity, error)
	findByIdFn        func(ctx context.Context, activityId string) (*db_models.Activity, error)
	updateFn          func(ctx context.Context, activity *db_models.Activity) error
	deleteFn          func(ctx context.Context, activityId string) error
	sumCostByTripIdFn func(ctx context.Context, tripId string) (decimal.Decimal, error)
}

func (s stubActivityRepo) Insert(ctx context.Context, activity *db_models.Activity) error {
	if s.insertFn == nil {
		return nil
	}
	return s.insertFn(ctx, activity)
}

func (s stubActivityRepo) FindByStopId(ctx context.Context, stopId string) ([]db_models.Activity, error) {
	if s.findByStopIdFn == nil {
		return nil, nil
	}
	return s.findByStopIdFn(ctx, stopId)
}

func (s stubActivityRepo) FindById(ctx context.Context, activityId string) (*db_models.Activity, error) {
	if s.findByIdFn == nil {
		return nil, nil
	}
	return s.findByIdFn(ctx, activityId)
}

func (s stubActivityRepo) Update(ctx context.Context, activity *db_models.Activity) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, activity)
}

func (s stubActivityRepo) Delete(ctx context.Context, activityId string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, activityId)
}

func (s stubActivityRepo) SumCostByTripId(ctx context.Context, tripId string) (decimal.Decimal, error) {
	if s.sumCostByTripIdFn == nil {
		return decimal.Zero, nil
	}
	return s.sumCostByTripIdFn(ctx, tripId)
}

type stubBudgetRepo struct {
	findByTripIdFn    func(ctx context.Context, tripId string) (*db_models.Budget, error)
	insertFn          func(ctx context.Context, budget *db_models.Budget) error
	updateTotalCostFn func(ctx context.Context, tripId string, totalCost decimal.Decimal) (*db_models.Budget, error)
}

func (s stubBudgetRepo) FindByTripId(ctx context.Context, tripId string) (*db_models.Budget, error) {
	if s.findByTripIdFn == nil {
		return nil, nil
	}
	return s.findByTripIdFn(ctx, tripId)
}

func (s stubBudgetRepo) Insert(ctx context.Context, budget *db_models.Budget) error {
	if s.insertFn == nil {
		return nil
	}
	return s.insertFn(ctx, budget)
}

func (s stubBudgetRepo) UpdateTotalCost(ctx context.Context, tripId string, totalCost decimal.Decimal) (*db_models.Budget, error) {
	if s.updateTotalCostFn == nil {
		return nil, nil
	}
	return s.updateTotalCostFn(ctx, tripId, totalCost)
}

type stubBudgetService struct {
	recomputeFn  func(ctx context.Context, tripId string) (*response_models.BudgetResponse, error)
	setCeilingFn func(ctx context.Context, tripId string, amount decimal.Decimal) (*response_models.BudgetResponse, error)
	getBudgetFn  func(ctx context.Context, tripId string) (*response_models.BudgetResponse, error)
}

func (s stubBudgetService) Recompute(ctx context.Context, tripId string) (*response_models.BudgetResponse, error) {
	if s.recomputeFn == nil {
		return &response_models.BudgetResponse{}, nil
	}
	return s.recomputeFn(ctx, tripId)
}

func (s stubBudgetService) SetCeiling(ctx context.Context, tripId string, amount decimal.Decimal) (*response_models.BudgetResponse, error) {
	if s.setCeilingFn == nil {
		return &response_models.BudgetResponse{}, nil
	}
	return s.setCeilingFn(ctx, tripId, amount)
}

func (s stubBudgetService) GetBudget(ctx context.Context, tripId string) (*response_models.BudgetResponse, error) {
	if s.getBudgetFn == nil {
		return &response_models.BudgetResponse{}, nil
	}
	return s.getBudgetFn(ctx, tripId)
}

type stubUserRepo struct {
	insertFn      func(ctx context.Context, user *db_models.User) error
	findByIdFn    func(ctx context.Context, id string) (*db_models.User, error)
	findByEmailFn func(ctx context.Context, email string) (*db_models.User, error)
}

func (s stubUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	if s.insertFn == nil {
		return nil
	}
	return s.insertFn(ctx, user)
}

func (s stubUserRepo) FindById(ctx context.Context, id string) (*db_models.User, error) {
	if s.findByIdFn == nil {
		return nil, nil
	}
	return s.findByIdFn(ctx, id)
}

func (s stubUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	if s.findByEmailFn == nil {
		return nil, nil
	}
	return s.findByEmailFn(ctx, email)
}

func mustDate(t string) time.Time {
	parsed, err := time.Parse("2006-01-02", t)
	if err != nil {
		panic(err)
	}
	return parsed
}
