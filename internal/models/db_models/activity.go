package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Activity struct {
	BaseModel
	TripStopID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Name          string    `gorm:"size:255;not null"`
	Description   string
	Cost          decimal.Decimal `gorm:"type:decimal(10,2);default:0;check:valid_cost,cost >= 0"`
	DurationHours decimal.Decimal `gorm:"type:decimal(5,2);default:0;check:valid_duration,duration_hours >= 0"`
	Category      string          `gorm:"size:50"`
}
