package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/pkg/utils"
)

func TestCreateTripRejectsReversedDates(t *testing.T) {
	inserted := false
	svc := NewTripService(stubTripRepo{
		insertWithBudgetFn: func(context.Context, *db_models.Trip) error {
			inserted = true
			return nil
		},
	})

	_, err := svc.CreateTrip(context.Background(), uuid.New().String(), request_models.TripRequest{
		Name:      "Euro Tour",
		StartDate: "2025-06-10",
		EndDate:   "2025-06-01",
	})
	if !errors.Is(err, utils.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
	if inserted {
		t.Fatal("trip must not be persisted when dates are invalid")
	}
}

func TestCreateTripRejectsMalformedDate(t *testing.T) {
	svc := NewTripService(stubTripRepo{})

	_, err := svc.CreateTrip(context.Background(), uuid.New().String(), request_models.TripRequest{
		Name:      "Euro Tour",
		StartDate: "June 1st",
		EndDate:   "2025-06-10",
	})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateTripPersistsParsedRange(t *testing.T) {
	var got *db_models.Trip
	svc := NewTripService(stubTripRepo{
		insertWithBudgetFn: func(_ context.Context, trip *db_models.Trip) error {
			got = trip
			return nil
		},
	})

	resp, err := svc.CreateTrip(context.Background(), uuid.New().String(), request_models.TripRequest{
		Name:      "Euro Tour",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-10",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected trip to be persisted")
	}
	if !got.StartDate.Equal(mustDate("2025-06-01")) || !got.EndDate.Equal(mustDate("2025-06-10")) {
		t.Fatalf("unexpected dates: %v .. %v", got.StartDate, got.EndDate)
	}
	if resp.StartDate != "2025-06-01" || resp.EndDate != "2025-06-10" {
		t.Fatalf("unexpected response dates: %s .. %s", resp.StartDate, resp.EndDate)
	}
}

func TestCreateTripConstraintViolationIsConflict(t *testing.T) {
	svc := NewTripService(stubTripRepo{
		insertWithBudgetFn: func(context.Context, *db_models.Trip) error {
			return gorm.ErrCheckConstraintViolated
		},
	})

	_, err := svc.CreateTrip(context.Background(), uuid.New().String(), request_models.TripRequest{
		Name:      "Euro Tour",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-10",
	})
	if !errors.Is(err, utils.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestGetTripNotOwnedIsNotFound(t *testing.T) {
	svc := NewTripService(stubTripRepo{
		findByIdAndUserIdFn: func(context.Context, string, string) (*db_models.Trip, error) {
			return nil, nil
		},
	})

	_, err := svc.GetTrip(context.Background(), uuid.New().String(), uuid.New().String())
	if !errors.Is(err, utils.ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound, got %v", err)
	}
}

func TestGetTripMalformedIdIsNotFound(t *testing.T) {
	svc := NewTripService(stubTripRepo{
		findByIdAndUserIdFn: func(context.Context, string, string) (*db_models.Trip, error) {
			t.Fatal("repository must not see a malformed id")
			return nil, nil
		},
	})

	_, err := svc.GetTrip(context.Background(), "laos-2025", uuid.New().String())
	if !errors.Is(err, utils.ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound, got %v", err)
	}
}

func TestDeleteTripRequiresOwnership(t *testing.T) {
	deleted := false
	svc := NewTripService(stubTripRepo{
		findByIdAndUserIdFn: func(context.Context, string, string) (*db_models.Trip, error) {
			return nil, nil
		},
		deleteFn: func(context.Context, string) error {
			deleted = true
			return nil
		},
	})

	err := svc.DeleteTrip(context.Background(), uuid.New().String(), uuid.New().String())
	if !errors.Is(err, utils.ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound, got %v", err)
	}
	if deleted {
		t.Fatal("delete must not run for a trip the caller does not own")
	}
}
