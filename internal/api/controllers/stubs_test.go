package controllers

import (
	"context"

	"github.com/shopspring/decimal"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
)

type stubTripService struct {
	createTripFn    func(ctx context.Context, userId string, request request_models.TripRequest) (*response_models.TripResponse, error)
	getTripsFn      func(ctx context.Context, userId string) ([]response_models.TripResponse, error)
	getTripFn       func(ctx context.Context, tripId, userId string) (*response_models.TripResponse, error)
	updateTripFn    func(ctx context.Context, tripId, userId string, request request_models.TripRequest) (*response_models.TripResponse, error)
	deleteTripFn    func(ctx context.Context, tripId, userId string) error
	authorizeTripFn func(ctx context.Context, tripId, userId string) (*db_models.Trip, error)
}

func (s stubTripService) CreateTrip(ctx context.Context, userId string, request request_models.TripRequest) (*response_models.TripResponse, error) {
	if s.createTripFn == nil {
		return &response_models.TripResponse{}, nil
	}
	return s.createTripFn(ctx, userId, request)
}

func (s stubTripService) GetTrips(ctx context.Context, userId string) ([]response_models.TripResponse, error) {
	if s.getTripsFn == nil {
		return nil, nil
	}
	return s.getTripsFn(ctx, userId)
}

func (s stubTripService) GetTrip(ctx context.Context, tripId, userId string) (*response_models.TripResponse, error) {
	if s.getTripFn == nil {
		return &response_models.TripResponse{}, nil
	}
	return s.getTripFn(ctx, tripId, userId)
}

func (s stubTripService) UpdateTrip(ctx context.Context, tripId, userId string, request request_models.TripRequest) (*response_models.TripResponse, error) {
	if s.updateTripFn == nil {
		return &response_models.TripResponse{}, nil
	}
	return s.updateTripFn(ctx, tripId, userId, request)
}

func (s stubTripService) DeleteTrip(ctx context.Context, tripId, userId string) error {
	if s.deleteTripFn == nil {
		return nil
	}
	return s.deleteTripFn(ctx, tripId, userId)
}

func (s stubTripService) AuthorizeTrip(ctx context.Context, tripId, userId string) (*db_models.Trip, error) {
	if s.authorizeTripFn == nil {
		return &db_models.Trip{}, nil
	}
	return s.authorizeTripFn(ctx, tripId, userId)
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
