package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, userId string, request request_models.TripRequest) (*response_models.TripResponse, error)
	GetTrips(ctx context.Context, userId string) ([]response_models.TripResponse, error)
	GetTrip(ctx context.Context, tripId string, userId string) (*response_models.TripResponse, error)
	UpdateTrip(ctx context.Context, tripId string, userId string, request request_models.TripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, tripId string, userId string) error

	// AuthorizeTrip verifies the trip exists and belongs to the caller.
	// Ownership failures surface as not-found so foreign trip ids leak nothing.
	AuthorizeTrip(ctx context.Context, tripId string, userId string) (*db_models.Trip, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

// validUUID screens path-parameter ids before they reach the database; a
// malformed id can't name an existing row, so lookups treat it as absent.
func validUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func parseDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, utils.ErrInvalidInput
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, utils.ErrInvalidInput
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, utils.ErrInvalidDateRange
	}
	return start, end, nil
}

func (t *TripService) CreateTrip(ctx context.Context, userId string, request request_models.TripRequest) (*response_models.TripResponse, error) {
	ownerId, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	start, end, err := parseDateRange(request.StartDate, request.EndDate)
	if err != nil {
		return nil, err
	}

	trip := &db_models.Trip{
		UserID:      ownerId,
		Name:        request.Name,
		Description: request.Description,
		StartDate:   start,
		EndDate:     end,
	}
	if err := t.tripRepo.InsertWithBudget(ctx, trip); err != nil {
		return nil, utils.TranslateDBError(err, utils.ErrConflict)
	}

	resp := response_models.FromTrip(trip)
	return &resp, nil
}

func (t *TripService) GetTrips(ctx context.Context, userId string) ([]response_models.TripResponse, error) {
	trips, err := t.tripRepo.FindByUserId(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.FromTrips(trips), nil
}

func (t *TripService) GetTrip(ctx context.Context, tripId string, userId string) (*response_models.TripResponse, error) {
	trip, err := t.AuthorizeTrip(ctx, tripId, userId)
	if err != nil {
		return nil, err
	}

	resp := response_models.FromTrip(trip)
	return &resp, nil
}

func (t *TripService) UpdateTrip(ctx context.Context, tripId string, userId string, request request_models.TripRequest) (*response_models.TripResponse, error) {
	trip, err := t.AuthorizeTrip(ctx, tripId, userId)
	if err != nil {
		return nil, err
	}

	start, end, err := parseDateRange(request.StartDate, request.EndDate)
	if err != nil {
		return nil, err
	}

	trip.Name = request.Name
	trip.Description = request.Description
	trip.StartDate = start
	trip.EndDate = end
	if err := t.tripRepo.Update(ctx, trip); err != nil {
		return nil, utils.TranslateDBError(err, utils.ErrConflict)
	}

	resp := response_models.FromTrip(trip)
	return &resp, nil
}

func (t *TripService) DeleteTrip(ctx context.Context, tripId string, userId string) error {
	if _, err := t.AuthorizeTrip(ctx, tripId, userId); err != nil {
		return err
	}

	if err := t.tripRepo.Delete(ctx, tripId); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TripService) AuthorizeTrip(ctx context.Context, tripId string, userId string) (*db_models.Trip, error) {
	if !validUUID(tripId) {
		return nil, utils.ErrTripNotFound
	}

	trip, err := t.tripRepo.FindByIdAndUserId(ctx, tripId, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}
