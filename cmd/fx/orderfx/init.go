package orderfx

import (
	"refurbmart/internal/api/controllers"
	"refurbmart/internal/repositories"
	"refurbmart/internal/services"
	"refurbmart/pkg/config"
	"refurbmart/pkg/gateway"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideOrderRepo, provideTransactionRepo, provideOrderService, provideOrderController)

func provideOrderRepo(db *gorm.DB) repositories.OrderRepositoryInterface {
	return repositories.NewOrderRepository(db)
}

func provideTransactionRepo(db *gorm.DB) repositories.TransactionRepositoryInterface {
	return repositories.NewTransactionRepository(db)
}

func provideOrderService(
	orderRepo repositories.OrderRepositoryInterface,
	txnRepo repositories.TransactionRepositoryInterface,
	variantRepo repositories.VariantRepositoryInterface,
	settingsRepo repositories.SettingsRepositoryInterface,
	gw gateway.Gateway,
	cfg *config.Config,
) services.OrderServiceInterface {
	return services.NewOrderService(orderRepo, txnRepo, variantRepo, settingsRepo, gw, cfg.Currency)
}

func provideOrderController(orderService services.OrderServiceInterface) *controllers.OrderController {
	return controllers.NewOrderController(orderService)
}
