package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Trip struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"size:255;not null"`
	Description string
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     time.Time `gorm:"type:date;not null;check:valid_dates,end_date >= start_date"`

	Stops  []TripStop `gorm:"constraint:OnDelete:CASCADE"`
	Budget *Budget    `gorm:"constraint:OnDelete:CASCADE"`
}
