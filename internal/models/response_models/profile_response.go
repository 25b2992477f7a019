package response_models

import (
	"gorm.io/datatypes"

	"globetrotter/internal/models/db_models"
)

type ProfileResponse struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	PhoneNumber    string         `json:"phoneNumber"`
	City           string         `json:"city"`
	Country        string         `json:"country"`
	AdditionalInfo string         `json:"additionalInfo"`
	Preferences    datatypes.JSON `json:"preferences"`
}

func FromProfile(p *db_models.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:             p.ID.String(),
		UserID:         p.UserID.String(),
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		PhoneNumber:    p.PhoneNumber,
		City:           p.City,
		Country:        p.Country,
		AdditionalInfo: p.AdditionalInfo,
		Preferences:    p.Preferences,
	}
}
