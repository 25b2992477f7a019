package db_models

import (
	"time"

	"github.com/google/uuid"
)

type TripStop struct {
	BaseModel
	TripID    uuid.UUID `gorm:"type:uuid;index;not null"`
	City      string    `gorm:"size:100;not null"`
	Country   string    `gorm:"size:100"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null;check:valid_stop_dates,end_date >= start_date"`
	Notes     string

	Activities []Activity `gorm:"foreignKey:TripStopID;constraint:OnDelete:CASCADE"`
}
