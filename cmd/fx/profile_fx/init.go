package profile_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Provide(provideProfileRepo, provideProfileService)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideProfileService(profileRepo repositories.ProfileRepository, userRepo repositories.UserRepository) services.ProfileServiceInterface {
	return services.NewProfileService(profileRepo, userRepo)
}
