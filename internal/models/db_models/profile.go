package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserProfile struct {
	BaseModel
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	FirstName      string    `gorm:"size:100"`
	LastName       string    `gorm:"size:100"`
	PhoneNumber    string    `gorm:"size:20"`
	City           string    `gorm:"size:100"`
	Country        string    `gorm:"size:100"`
	AdditionalInfo string
	// Free-form client settings (units, currency, home airport, ...).
	Preferences datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
