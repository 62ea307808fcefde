package settingsfx

import (
	"refurbmart/internal/api/controllers"
	"refurbmart/internal/repositories"
	"refurbmart/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideSettingsRepo, provideSettingsService, provideSettingsController)

func provideSettingsRepo(db *gorm.DB) repositories.SettingsRepositoryInterface {
	return repositories.NewSettingsRepository(db)
}

func provideSettingsService(settingsRepo repositories.SettingsRepositoryInterface) services.SettingsServiceInterface {
	return services.NewSettingsService(settingsRepo)
}

func provideSettingsController(settingsService services.SettingsServiceInterface) *controllers.SettingsController {
	return controllers.NewSettingsController(settingsService)
}
