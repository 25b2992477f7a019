package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
}

func NewActivityController(activityService services.ActivityServiceInterface) *ActivityController {
	return &ActivityController{activityService: activityService}
}

// GetActivities godoc
// @Summary List activities of a stop
// @Tags Activities
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param stopId path string true "Stop ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/stops/{stopId}/activities [get]
func (a *ActivityController) GetActivities(c *gin.Context) {
	userId := c.GetString("user_id")

	activities, err := a.activityService.GetActivities(c.Request.Context(), c.Param("tripId"), c.Param("stopId"), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"activities": activities}, "Activities retrieved")
}

// GetActivity godoc
// @Summary Get one activity
// @Tags Activities
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param stopId path string true "Stop ID"
// @Param activityId path string true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/stops/{stopId}/activities/{activityId} [get]
func (a *ActivityController) GetActivity(c *gin.Context) {
	userId := c.GetString("user_id")

	activity, err := a.activityService.GetActivity(c.Request.Context(), c.Param("tripId"), c.Param("stopId"), c.Param("activityId"), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"activity": activity}, "Activity retrieved")
}

// CreateActivity godoc
// @Summary Add an activity to a stop
// @Description Creates the activity and recomputes the trip budget
// @Tags Activities
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param stopId path string true "Stop ID"
// @Param request body request_models.ActivityRequest true "Activity payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/stops/{stopId}/activities [post]
func (a *ActivityController) CreateActivity(c *gin.Context) {
	var req request_models.ActivityRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	userId := c.GetString("user_id")
	activity, err := a.activityService.CreateActivity(c.Request.Context(), c.Param("tripId"), c.Param("stopId"), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, gin.H{"activity": activity}, "Activity created successfully")
}

// UpdateActivity godoc
// @Summary Update an activity
// @Description Updates the activity and recomputes the trip budget
// @Tags Activities
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param stopId path string true "Stop ID"
// @Param activityId path string true "Activity ID"
// @Param request body request_models.ActivityRequest true "Activity payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/stops/{stopId}/activities/{activityId} [put]
func (a *ActivityController) UpdateActivity(c *gin.Context) {
	var req request_models.ActivityRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	userId := c.GetString("user_id")
	activity, err := a.activityService.UpdateActivity(c.Request.Context(), c.Param("tripId"), c.Param("stopId"), c.Param("activityId"), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"activity": activity}, "Activity updated successfully")
}

// DeleteActivity godoc
// @Summary Delete an activity
// @Description Deletes the activity and recomputes the trip budget
// @Tags Activities
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param stopId path string true "Stop ID"
// @Param activityId path string true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/stops/{stopId}/activities/{activityId} [delete]
func (a *ActivityController) DeleteActivity(c *gin.Context) {
	userId := c.GetString("user_id")

	if err := a.activityService.DeleteActivity(c.Request.Context(), c.Param("tripId"), c.Param("stopId"), c.Param("activityId"), userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, nil, "Activity deleted successfully")
}
