package services

import (
	"context"

	"github.com/shopspring/decimal"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type ActivityServiceInterface interface {
	CreateActivity(ctx context.Context, tripId, stopId, userId string, request request_models.ActivityRequest) (*response_models.ActivityResponse, error)
	GetActivities(ctx context.Context, tripId, stopId, userId string) ([]response_models.ActivityResponse, error)
	GetActivity(ctx context.Context, tripId, stopId, activityId, userId string) (*response_models.ActivityResponse, error)
	UpdateActivity(ctx context.Context, tripId, stopId, activityId, userId string, request request_models.ActivityRequest) (*response_models.ActivityResponse, error)
	DeleteActivity(ctx context.Context, tripId, stopId, activityId, userId string) error
}

type ActivityService struct {
	activityRepo  repositories.ActivityRepository
	stopRepo      repositories.StopRepository
	tripRepo      repositories.TripRepository
	budgetService BudgetServiceInterface
}

func NewActivityService(
	activityRepo repositories.ActivityRepository,
	stopRepo repositories.StopRepository,
	tripRepo repositories.TripRepository,
	budgetService BudgetServiceInterface,
) ActivityServiceInterface {
	return &ActivityService{
		activityRepo:  activityRepo,
		stopRepo:      stopRepo,
		tripRepo:      tripRepo,
		budgetService: budgetService,
	}
}

// authorizeStop walks trip ownership then stop membership before any
// activity access.
func (a *ActivityService) authorizeStop(ctx context.Context, tripId, stopId, userId string) (*db_models.TripStop, error) {
	if !validUUID(tripId) {
		return nil, utils.ErrTripNotFound
	}
	if !validUUID(stopId) {
		return nil, utils.ErrStopNotFound
	}

	trip, err := a.tripRepo.FindByIdAndUserId(ctx, tripId, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	stop, err := a.stopRepo.FindById(ctx, stopId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if stop == nil || stop.TripID != trip.ID {
		return nil, utils.ErrStopNotFound
	}
	return stop, nil
}

// authorizeActivity extends the chain to the activity itself.
func (a *ActivityService) authorizeActivity(ctx context.Context, tripId, stopId, activityId, userId string) (*db_models.Activity, error) {
	stop, err := a.authorizeStop(ctx, tripId, stopId, userId)
	if err != nil {
		return nil, err
	}

	if !validUUID(activityId) {
		return nil, utils.ErrActivityNotFound
	}

	activity, err := a.activityRepo.FindById(ctx, activityId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if activity == nil || activity.TripStopID != stop.ID {
		return nil, utils.ErrActivityNotFound
	}
	return activity, nil
}

func (a *ActivityService) CreateActivity(ctx context.Context, tripId, stopId, userId string, request request_models.ActivityRequest) (*response_models.ActivityResponse, error) {
	stop, err := a.authorizeStop(ctx, tripId, stopId, userId)
	if err != nil {
		return nil, err
	}

	cost, duration, err := parseAmounts(request)
	if err != nil {
		return nil, err
	}

	activity := &db_models.Activity{
		TripStopID:    stop.ID,
		Name:          request.Name,
		Description:   request.Description,
		Cost:          cost,
		DurationHours: duration,
		Category:      request.Category,
	}
	if err := a.activityRepo.Insert(ctx, activity); err != nil {
		return nil, utils.TranslateDBError(err, utils.ErrConflict)
	}

	if _, err := a.budgetService.Recompute(ctx, tripId); err != nil {
		return nil, err
	}

	resp := response_models.FromActivity(activity)
	return &resp, nil
}

func (a *ActivityService) GetActivities(ctx context.Context, tripId, stopId, userId string) ([]response_models.ActivityResponse, error) {
	if _, err := a.authorizeStop(ctx, tripId, stopId, userId); err != nil {
		return nil, err
	}

	activities, err := a.activityRepo.FindByStopId(ctx, stopId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.FromActivities(activities), nil
}

func (a *ActivityService) GetActivity(ctx context.Context, tripId, stopId, activityId, userId string) (*response_models.ActivityResponse, error) {
	activity, err := a.authorizeActivity(ctx, tripId, stopId, activityId, userId)
	if err != nil {
		return nil, err
	}

	resp := response_models.FromActivity(activity)
	return &resp, nil
}

func (a *ActivityService) UpdateActivity(ctx context.Context, tripId, stopId, activityId, userId string, request request_models.ActivityRequest) (*response_models.ActivityResponse, error) {
	activity, err := a.authorizeActivity(ctx, tripId, stopId, activityId, userId)
	if err != nil {
		return nil, err
	}

	cost, duration, err := parseAmounts(request)
	if err != nil {
		return nil, err
	}

	activity.Name = request.Name
	activity.Description = request.Description
	activity.Cost = cost
	activity.DurationHours = duration
	activity.Category = request.Category
	if err := a.activityRepo.Update(ctx, activity); err != nil {
		return nil, utils.TranslateDBError(err, utils.ErrConflict)
	}

	if _, err := a.budgetService.Recompute(ctx, tripId); err != nil {
		return nil, err
	}

	resp := response_models.FromActivity(activity)
	return &resp, nil
}

func (a *ActivityService) DeleteActivity(ctx context.Context, tripId, stopId, activityId, userId string) error {
	if _, err := a.authorizeActivity(ctx, tripId, stopId, activityId, userId); err != nil {
		return err
	}

	if err := a.activityRepo.Delete(ctx, activityId); err != nil {
		return utils.ErrDatabaseError
	}

	if _, err := a.budgetService.Recompute(ctx, tripId); err != nil {
		return err
	}
	return nil
}

func parseAmounts(request request_models.ActivityRequest) (decimal.Decimal, decimal.Decimal, error) {
	if request.Cost < 0 || request.DurationHours < 0 {
		return decimal.Zero, decimal.Zero, utils.ErrInvalidInput
	}
	cost := decimal.NewFromFloat(request.Cost).Round(2)
	duration := decimal.NewFromFloat(request.DurationHours).Round(2)
	return cost, duration, nil
}
