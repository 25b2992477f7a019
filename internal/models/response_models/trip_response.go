package response_models

import (
	"globetrotter/internal/models/db_models"
	"globetrotter/pkg/utils"
)

type TripResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

type StopResponse struct {
	ID        string `json:"id"`
	TripID    string `json:"trip_id"`
	City      string `json:"city"`
	Country   string `json:"country"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Notes     string `json:"notes"`
}

type ActivityResponse struct {
	ID            string `json:"id"`
	TripStopID    string `json:"trip_stop_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Cost          string `json:"cost"`
	DurationHours string `json:"duration_hours"`
	Category      string `json:"category"`
}

func FromTrip(t *db_models.Trip) TripResponse {
	return TripResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Description: t.Description,
		StartDate:   utils.FormatDate(t.StartDate),
		EndDate:     utils.FormatDate(t.EndDate),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromTrips(trips []db_models.Trip) []TripResponse {
	out := make([]TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, FromTrip(&trips[i]))
	}
	return out
}

func FromStop(s *db_models.TripStop) StopResponse {
	return StopResponse{
		ID:        s.ID.String(),
		TripID:    s.TripID.String(),
		City:      s.City,
		Country:   s.Country,
		StartDate: utils.FormatDate(s.StartDate),
		EndDate:   utils.FormatDate(s.EndDate),
		Notes:     s.Notes,
	}
}

func FromStops(stops []db_models.TripStop) []StopResponse {
	out := make([]StopResponse, 0, len(stops))
	for i := range stops {
		out = append(out, FromStop(&stops[i]))
	}
	return out
}

func FromActivity(a *db_models.Activity) ActivityResponse {
	return ActivityResponse{
		ID:            a.ID.String(),
		TripStopID:    a.TripStopID.String(),
		Name:          a.Name,
		Description:   a.Description,
		Cost:          a.Cost.StringFixed(2),
		DurationHours: a.DurationHours.StringFixed(2),
		Category:      a.Category,
	}
}

func FromActivities(activities []db_models.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(activities))
	for i := range activities {
		out = append(out, FromActivity(&activities[i]))
	}
	return out
}
