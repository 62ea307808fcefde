package inventoryfx

import (
	"refurbmart/internal/api/controllers"
	"refurbmart/internal/repositories"
	"refurbmart/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideInventoryService, provideInventoryController)

func provideInventoryService(variantRepo repositories.VariantRepositoryInterface) services.InventoryServiceInterface {
	return services.NewInventoryService(variantRepo)
}

func provideInventoryController(inventoryService services.InventoryServiceInterface) *controllers.InventoryController {
	return controllers.NewInventoryController(inventoryService)
}
