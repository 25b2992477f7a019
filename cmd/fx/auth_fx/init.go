package auth_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Provide(provideUserRepo, provideAuthService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAuthService(userRepo repositories.UserRepository) services.AuthServiceInterface {
	return services.NewAuthService(userRepo)
}
