package services

import (
	"context"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type StopServiceInterface interface {
	CreateStop(ctx context.Context, tripId string, userId string, request request_models.StopRequest) (*response_models.StopResponse, error)
	GetStops(ctx context.Context, tripId string, userId string) ([]response_models.StopResponse, error)
	GetStop(ctx context.Context, tripId string, stopId string, userId string) (*response_models.StopResponse, error)
	UpdateStop(ctx context.Context, tripId string, stopId string, userId string, request request_models.StopRequest) (*response_models.StopResponse, error)
	DeleteStop(ctx context.Context, tripId string, stopId string, userId string) error
}

type StopService struct {
	stopRepo      repositories.StopRepository
	tripRepo      repositories.TripRepository
	budgetService BudgetServiceInterface
}

func NewStopService(stopRepo repositories.StopRepository, tripRepo repositories.TripRepository, budgetService BudgetServiceInterface) StopServiceInterface {
	return &StopService{
		stopRepo:      stopRepo,
		tripRepo:      tripRepo,
		budgetService: budgetService,
	}
}

// authorizeStop walks trip ownership then stop membership. Both failures
// surface as not-found.
func (s *StopService) authorizeStop(ctx context.Context, tripId string, stopId string, userId string) (*db_models.TripStop, error) {
	if !validUUID(tripId) {
		return nil, utils.ErrTripNotFound
	}
	if !validUUID(stopId) {
		return nil, utils.ErrStopNotFound
	}

	trip, err := s.tripRepo.FindByIdAndUserId(ctx, tripId, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	stop, err := s.stopRepo.FindById(ctx, stopId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if stop == nil || stop.TripID != trip.ID {
		return nil, utils.ErrStopNotFound
	}
	return stop, nil
}

func (s *StopService) CreateStop(ctx context.Context, tripId string, userId string, request request_models.StopRequest) (*response_models.StopResponse, error) {
	if !validUUID(tripId) {
		return nil, utils.ErrTripNotFound
	}

	trip, err := s.tripRepo.FindByIdAndUserId(ctx, tripId, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	start, end, err := parseDateRange(request.StartDate, request.EndDate)
	if err != nil {
		return nil, err
	}

	stop := &db_models.TripStop{
		TripID:    trip.ID,
		City:      request.City,
		Country:   request.Country,
		StartDate: start,
		EndDate:   end,
		Notes:     request.Notes,
	}
	if err := s.stopRepo.Insert(ctx, stop); err != nil {
		return nil, utils.TranslateDBError(err, utils.ErrConflict)
	}

	resp := response_models.FromStop(stop)
	return &resp, nil
}

func (s *StopService) GetStops(ctx context.Context, tripId string, userId string) ([]response_models.StopResponse, error) {
	if !validUUID(tripId) {
		return nil, utils.ErrTripNotFound
	}

	trip, err := s.tripRepo.FindByIdAndUserId(ctx, tripId, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	stops, err := s.stopRepo.FindByTripId(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.FromStops(stops), nil
}

func (s *StopService) GetStop(ctx context.Context, tripId string, stopId string, userId string) (*response_models.StopResponse, error) {
	stop, err := s.authorizeStop(ctx, tripId, stopId, userId)
	if err != nil {
		return nil, err
	}

	resp := response_models.FromStop(stop)
	return &resp, nil
}

func (s *StopService) UpdateStop(ctx context.Context, tripId string, stopId string, userId string, request request_models.StopRequest) (*response_models.StopResponse, error) {
	stop, err := s.authorizeStop(ctx, tripId, stopId, userId)
	if err != nil {
		return nil, err
	}

	start, end, err := parseDateRange(request.StartDate, request.EndDate)
	if err != nil {
		return nil, err
	}

	stop.City = request.City
	stop.Country = request.Country
	stop.StartDate = start
	stop.EndDate = end
	stop.Notes = request.Notes
	if err := s.stopRepo.Update(ctx, stop); err != nil {
		return nil, utils.TranslateDBError(err, utils.ErrConflict)
	}

	resp := response_models.FromStop(stop)
	return &resp, nil
}

func (s *StopService) DeleteStop(ctx context.Context, tripId string, stopId string, userId string) error {
	if _, err := s.authorizeStop(ctx, tripId, stopId, userId); err != nil {
		return err
	}

	if err := s.stopRepo.Delete(ctx, stopId); err != nil {
		return utils.ErrDatabaseError
	}

	// Deleting a stop removes its activities, so the trip total changes too.
	if _, err := s.budgetService.Recompute(ctx, tripId); err != nil {
		return err
	}
	return nil
}
