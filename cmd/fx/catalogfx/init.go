package catalogfx

import (
	"refurbmart/internal/api/controllers"
	"refurbmart/internal/repositories"
	"refurbmart/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideCategoryRepo, provideMasterRepo, provideProductRepo, provideVariantRepo,
	provideCatalogService, provideCatalogController)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepositoryInterface {
	return repositories.NewCategoryRepository(db)
}

func provideMasterRepo(db *gorm.DB) repositories.MasterRepositoryInterface {
	return repositories.NewMasterRepository(db)
}

func provideProductRepo(db *gorm.DB) repositories.ProductRepositoryInterface {
	return repositories.NewProductRepository(db)
}

func provideVariantRepo(db *gorm.DB) repositories.VariantRepositoryInterface {
	return repositories.NewVariantRepository(db)
}

func provideCatalogService(
	categoryRepo repositories.CategoryRepositoryInterface,
	masterRepo repositories.MasterRepositoryInterface,
	productRepo repositories.ProductRepositoryInterface,
	variantRepo repositories.VariantRepositoryInterface,
) services.CatalogServiceInterface {
	return services.NewCatalogService(categoryRepo, masterRepo, productRepo, variantRepo)
}

func provideCatalogController(catalogService services.CatalogServiceInterface) *controllers.CatalogController {
	return controllers.NewCatalogController(catalogService)
}
