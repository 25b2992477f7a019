package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type StopController struct {
	stopService services.StopServiceInterface
}

func NewStopController(stopService services.StopServiceInterface) *StopController {
	return &StopController{stopService: stopService}
}

// GetStops godoc
// @Summary List stops of a trip
// @Tags Stops
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/stops [get]
func (s *StopController) GetStops(c *gin.Context) {
	userId := c.GetString("user_id")

	stops, err := s.stopService.GetStops(c.Request.Context(), c.Param("tripId"), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"stops": stops}, "Stops retrieved")
}

// GetStop godoc
// @Summary Get one stop
// @Tags Stops
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param stopId path string true "Stop ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/stops/{stopId} [get]
func (s *StopController) GetStop(c *gin.Context) {
	userId := c.GetString("user_id")

	stop, err := s.stopService.GetStop(c.Request.Context(), c.Param("tripId"), c.Param("stopId"), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"stop": stop}, "Stop retrieved")
}

// CreateStop godoc
// @Summary Add a stop to a trip
// @Tags Stops
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.StopRequest true "Stop payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/stops [post]
func (s *StopController) CreateStop(c *gin.Context) {
	var req request_models.StopRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	userId := c.GetString("user_id")
	stop, err := s.stopService.CreateStop(c.Request.Context(), c.Param("tripId"), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, gin.H{"stop": stop}, "Stop created successfully")
}

// UpdateStop godoc
// @Summary Update a stop
// @Tags Stops
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param stopId path string true "Stop ID"
// @Param request body request_models.StopRequest true "Stop payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/stops/{stopId} [put]
func (s *StopController) UpdateStop(c *gin.Context) {
	var req request_models.StopRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	userId := c.GetString("user_id")
	stop, err := s.stopService.UpdateStop(c.Request.Context(), c.Param("tripId"), c.Param("stopId"), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"stop": stop}, "Stop updated successfully")
}

// DeleteStop godoc
// @Summary Delete a stop
// @Description Removes the stop with its activities and recomputes the trip budget
// @Tags Stops
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param stopId path string true "Stop ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/stops/{stopId} [delete]
func (s *StopController) DeleteStop(c *gin.Context) {
	userId := c.GetString("user_id")

	if err := s.stopService.DeleteStop(c.Request.Context(), c.Param("tripId"), c.Param("stopId"), userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, nil, "Stop deleted successfully")
}
