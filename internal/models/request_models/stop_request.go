package request_models

type StopRequest struct {
	City      string `json:"city" binding:"required"`
	Country   string `json:"country"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Notes     string `json:"notes"`
}
