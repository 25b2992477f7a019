package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/profile [get]
func (p *ProfileController) GetProfile(c *gin.Context) {
	userId := c.GetString("user_id")

	profile, err := p.profileService.GetProfile(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"profile": profile}, "Profile retrieved")
}

// CreateProfile godoc
// @Summary Create the caller's profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body request_models.ProfileRequest true "Profile payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/profile [post]
func (p *ProfileController) CreateProfile(c *gin.Context) {
	var req request_models.ProfileRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	userId := c.GetString("user_id")
	profile, err := p.profileService.CreateProfile(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, gin.H{"profile": profile}, "Profile created successfully")
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body request_models.ProfileRequest true "Profile payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/profile [put]
func (p *ProfileController) UpdateProfile(c *gin.Context) {
	var req request_models.ProfileRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	userId := c.GetString("user_id")
	profile, err := p.profileService.UpdateProfile(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"profile": profile}, "Profile updated successfully")
}
