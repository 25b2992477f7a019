package request_models

// SetBudgetRequest carries an explicit user-set total. The pointer
// distinguishes a missing amount from an explicit zero.
type SetBudgetRequest struct {
	TotalCost *float64 `json:"totalCost" binding:"required"`
}
