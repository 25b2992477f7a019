package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"globetrotter/cmd/fx/activity_fx"
	"globetrotter/cmd/fx/auth_fx"
	"globetrotter/cmd/fx/budget_fx"
	"globetrotter/cmd/fx/controllers_fx"
	"globetrotter/cmd/fx/dashboard_fx"
	"globetrotter/cmd/fx/db_fx"
	"globetrotter/cmd/fx/profile_fx"
	"globetrotter/cmd/fx/stop_fx"
	"globetrotter/cmd/fx/trip_fx"
	"globetrotter/internal/api/controllers"
	"globetrotter/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		auth_fx.Module,
		profile_fx.Module,
		trip_fx.Module,
		stop_fx.Module,
		activity_fx.Module,
		budget_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	tripController *controllers.TripController,
	stopController *controllers.StopController,
	activityController *controllers.ActivityController,
	budgetController *controllers.BudgetController,
	dashboardController *controllers.DashboardController,
	referenceController *controllers.ReferenceController,
) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		authController,
		profileController,
		tripController,
		stopController,
		activityController,
		budgetController,
		dashboardController,
		referenceController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	tripController *controllers.TripController,
	stopController *controllers.StopController,
	activityController *controllers.ActivityController,
	budgetController *controllers.BudgetController,
	dashboardController *controllers.DashboardController,
	referenceController *controllers.ReferenceController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", authController.SignUp)
	auth.POST("/login", authController.Login)
	auth.GET("/me", middleware.JWTAuthMiddleware(), authController.Me)

	api.GET("/cities/popular", referenceController.GetPopularCities)
	api.GET("/regions", referenceController.GetRegions)

	protected := api.Group("")
	protected.Use(middleware.JWTAuthMiddleware())

	profile := protected.Group("/profile")
	profile.GET("", profileController.GetProfile)
	profile.POST("", profileController.CreateProfile)
	profile.PUT("", profileController.UpdateProfile)

	trips := protected.Group("/trips")
	trips.GET("", tripController.GetTrips)
	trips.POST("", tripController.CreateTrip)
	trips.GET("/:tripId", tripController.GetTrip)
	trips.PUT("/:tripId", tripController.UpdateTrip)
	trips.DELETE("/:tripId", tripController.DeleteTrip)

	trips.GET("/:tripId/stops", stopController.GetStops)
	trips.POST("/:tripId/stops", stopController.CreateStop)
	trips.GET("/:tripId/stops/:stopId", stopController.GetStop)
	trips.PUT("/:tripId/stops/:stopId", stopController.UpdateStop)
	trips.DELETE("/:tripId/stops/:stopId", stopController.DeleteStop)

	trips.GET("/:tripId/stops/:stopId/activities", activityController.GetActivities)
	trips.POST("/:tripId/stops/:stopId/activities", activityController.CreateActivity)
	trips.GET("/:tripId/stops/:stopId/activities/:activityId", activityController.GetActivity)
	trips.PUT("/:tripId/stops/:stopId/activities/:activityId", activityController.UpdateActivity)
	trips.DELETE("/:tripId/stops/:stopId/activities/:activityId", activityController.DeleteActivity)

	trips.GET("/:tripId/budget", budgetController.GetBudget)
	trips.PUT("/:tripId/budget", budgetController.SetBudget)
	trips.POST("/:tripId/budget", budgetController.SetBudget)
	trips.POST("/:tripId/budget/recalculate", budgetController.RecalculateBudget)

	protected.GET("/dashboard", dashboardController.GetSummary)
}
