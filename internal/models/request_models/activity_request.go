package request_models

type ActivityRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Cost          float64 `json:"cost" binding:"gte=0"`
	DurationHours float64 `json:"durationHours" binding:"gte=0"`
	Category      string  `json:"category"`
}
