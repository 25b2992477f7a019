package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetSummary godoc
// @Summary Dashboard summary
// @Description Trip count, total budget and upcoming-trip count for the caller
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/dashboard [get]
func (d *DashboardController) GetSummary(c *gin.Context) {
	userId := c.GetString("user_id")

	report, err := d.dashboardService.BuildSummary(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, report, "Dashboard summary retrieved")
}
