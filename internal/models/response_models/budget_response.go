package response_models

import "globetrotter/internal/models/db_models"

type BudgetResponse struct {
	ID        string `json:"id"`
	TripID    string `json:"trip_id"`
	TotalCost string `json:"total_cost"`
	UpdatedAt int64  `json:"updated_at"`
}

func FromBudget(b *db_models.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        b.ID.String(),
		TripID:    b.TripID.String(),
		TotalCost: b.TotalCost.StringFixed(2),
		UpdatedAt: b.UpdatedAt,
	}
}
