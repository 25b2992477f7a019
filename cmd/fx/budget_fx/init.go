package budget_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Provide(provideBudgetRepo, provideBudgetService)

func provideBudgetRepo(db *gorm.DB) repositories.BudgetRepository {
	return repositories.NewBudgetRepository(db)
}

func provideBudgetService(budgetRepo repositories.BudgetRepository, activityRepo repositories.ActivityRepository) services.BudgetServiceInterface {
	return services.NewBudgetService(budgetRepo, activityRepo)
}
