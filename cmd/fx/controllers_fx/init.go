package controllers_fx

import (
	"go.uber.org/fx"

	"globetrotter/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewStopController),
	fx.Provide(controllers.NewActivityController),
	fx.Provide(controllers.NewBudgetController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewReferenceController),
)
