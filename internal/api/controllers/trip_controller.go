package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{tripService: tripService}
}

// GetTrips godoc
// @Summary List the caller's trips
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips [get]
func (t *TripController) GetTrips(c *gin.Context) {
	userId := c.GetString("user_id")

	trips, err := t.tripService.GetTrips(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"trips": trips}, "Trips retrieved")
}

// GetTrip godoc
// @Summary Get one trip
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	userId := c.GetString("user_id")

	trip, err := t.tripService.GetTrip(c.Request.Context(), c.Param("tripId"), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"trip": trip}, "Trip retrieved")
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Creates the trip with its zero-valued budget
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.TripRequest true "Trip payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.TripRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	userId := c.GetString("user_id")
	trip, err := t.tripService.CreateTrip(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, gin.H{"trip": trip}, "Trip created successfully")
}

// UpdateTrip godoc
// @Summary Update a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.TripRequest true "Trip payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId} [put]
func (t *TripController) UpdateTrip(c *gin.Context) {
	var req request_models.TripRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	userId := c.GetString("user_id")
	trip, err := t.tripService.UpdateTrip(c.Request.Context(), c.Param("tripId"), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"trip": trip}, "Trip updated successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Description Removes the trip, its stops, their activities and its budget
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	userId := c.GetString("user_id")

	if err := t.tripService.DeleteTrip(c.Request.Context(), c.Param("tripId"), userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, nil, "Trip deleted successfully")
}
