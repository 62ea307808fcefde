package transactionfx

import (
	"refurbmart/internal/api/controllers"
	"refurbmart/internal/repositories"
	"refurbmart/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideTransactionService, provideTransactionController)

func provideTransactionService(
	txnRepo repositories.TransactionRepositoryInterface,
	orderRepo repositories.OrderRepositoryInterface,
) services.TransactionServiceInterface {
	return services.NewTransactionService(txnRepo, orderRepo)
}

func provideTransactionController(transactionService services.TransactionServiceInterface) *controllers.TransactionController {
	return controllers.NewTransactionController(transactionService)
}
