package dashboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Provide(provideDashboardRepo, provideDashboardService)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(dashboardRepo repositories.DashboardRepository) services.DashboardServiceInterface {
	return services.NewDashboardService(dashboardRepo)
}
