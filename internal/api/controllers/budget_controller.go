package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type BudgetController struct {
	budgetService services.BudgetServiceInterface
	tripService   services.TripServiceInterface
}

func NewBudgetController(budgetService services.BudgetServiceInterface, tripService services.TripServiceInterface) *BudgetController {
	return &BudgetController{
		budgetService: budgetService,
		tripService:   tripService,
	}
}

// GetBudget godoc
// @Summary Get a trip's budget
// @Description Returns the budget row, creating a zero-valued one on first access
// @Tags Budget
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/budget [get]
func (b *BudgetController) GetBudget(c *gin.Context) {
	tripId := c.Param("tripId")
	userId := c.GetString("user_id")

	if _, err := b.tripService.AuthorizeTrip(c.Request.Context(), tripId, userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	budget, err := b.budgetService.GetBudget(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"budget": budget}, "Budget retrieved")
}

// SetBudget godoc
// @Summary Set an explicit budget amount
// @Description Overwrites the stored total; the next activity change recomputes it
// @Tags Budget
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.SetBudgetRequest true "Budget payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/budget [put]
func (b *BudgetController) SetBudget(c *gin.Context) {
	var req request_models.SetBudgetRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	tripId := c.Param("tripId")
	userId := c.GetString("user_id")

	if _, err := b.tripService.AuthorizeTrip(c.Request.Context(), tripId, userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	amount := decimal.NewFromFloat(*req.TotalCost).Round(2)
	budget, err := b.budgetService.SetCeiling(c.Request.Context(), tripId, amount)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"budget": budget}, "Budget updated successfully")
}

// RecalculateBudget godoc
// @Summary Recompute the budget from activity costs
// @Tags Budget
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/budget/recalculate [post]
func (b *BudgetController) RecalculateBudget(c *gin.Context) {
	tripId := c.Param("tripId")
	userId := c.GetString("user_id")

	if _, err := b.tripService.AuthorizeTrip(c.Request.Context(), tripId, userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	budget, err := b.budgetService.Recompute(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"budget": budget}, "Budget recalculated")
}
