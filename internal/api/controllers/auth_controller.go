package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{authService: authService}
}

// SignUp godoc
// @Summary Register a new user
// @Description Create a user account and return a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Signup payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /api/auth/signup [post]
func (a *AuthController) SignUp(c *gin.Context) {
	var req request_models.SignUpRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	resp, err := a.authService.SignUp(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, resp, "User registered successfully")
}

// Login godoc
// @Summary Login
// @Description Authenticate a user and return a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	resp, err := a.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, resp, "Login successful")
}

// Me godoc
// @Summary Current user
// @Description Fetch the authenticated user's record
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/auth/me [get]
func (a *AuthController) Me(c *gin.Context) {
	userId := c.GetString("user_id")

	user, err := a.authService.GetCurrentUser(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"user": user}, "User retrieved")
}
