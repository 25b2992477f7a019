package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget holds the single per-trip total. The same column stores either a
// user-set ceiling or the recomputed activity sum; whichever wrote last wins.
type Budget struct {
	BaseModel
	TripID    uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	TotalCost decimal.Decimal `gorm:"type:decimal(10,2);default:0;check:valid_budget_cost,total_cost >= 0"`
}
