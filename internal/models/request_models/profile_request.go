package request_models

import "encoding/json"

type ProfileRequest struct {
	FirstName      string          `json:"firstName" binding:"required"`
	LastName       string          `json:"lastName" binding:"required"`
	PhoneNumber    string          `json:"phoneNumber"`
	City           string          `json:"city"`
	Country        string          `json:"country"`
	AdditionalInfo string          `json:"additionalInfo"`
	Preferences    json.RawMessage `json:"preferences"`
}
