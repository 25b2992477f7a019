package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/response_models"
	"globetrotter/pkg/utils"
)

// ReferenceController serves the static city and region catalogs the trip
// creation forms are built from.
type ReferenceController struct{}

func NewReferenceController() *ReferenceController {
	return &ReferenceController{}
}

var popularCities = []response_models.City{
	{ID: 1, Name: "Paris", Country: "France", CostIndex: "High", Popularity: 95},
	{ID: 2, Name: "Tokyo", Country: "Japan", CostIndex: "High", Popularity: 92},
	{ID: 3, Name: "New York", Country: "USA", CostIndex: "High", Popularity: 90},
	{ID: 4, Name: "Bali", Country: "Indonesia", CostIndex: "Medium", Popularity: 88},
	{ID: 5, Name: "London", Country: "UK", CostIndex: "High", Popularity: 85},
	{ID: 6, Name: "Barcelona", Country: "Spain", CostIndex: "Medium", Popularity: 82},
}

var regions = []response_models.Region{
	{ID: 1, Name: "Europe", Img: "/images/europe.png"},
	{ID: 2, Name: "Asia", Img: "/images/asia.png"},
	{ID: 3, Name: "Africa", Img: "/images/africa.png"},
	{ID: 4, Name: "N. America", Img: "/images/namerica.png"},
	{ID: 5, Name: "S. America", Img: "/images/samerica.png"},
	{ID: 6, Name: "Antarctica", Img: "/images/antarctica.png"},
	{ID: 7, Name: "Australia", Img: "/images/australia.png"},
}

// GetPopularCities godoc
// @Summary Popular cities
// @Tags Reference
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/cities/popular [get]
func (r *ReferenceController) GetPopularCities(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, gin.H{"cities": popularCities}, "Popular cities retrieved")
}

// GetRegions godoc
// @Summary Regions
// @Tags Reference
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/regions [get]
func (r *ReferenceController) GetRegions(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, gin.H{"regions": regions}, "Regions retrieved")
}
