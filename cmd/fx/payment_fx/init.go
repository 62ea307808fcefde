package payment_fx

import (
	"log"

	"refurbmart/internal/api/controllers"
	"refurbmart/internal/repositories"
	"refurbmart/internal/services"
	"refurbmart/pkg/config"
	"refurbmart/pkg/gateway"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideGateway, providePaymentService, providePaymentController)

func provideGateway(cfg *config.Config) gateway.Gateway {
	gw, err := gateway.NewRazorpayGateway(gateway.Config{
		KeyID:     cfg.RazorpayKeyID,
		KeySecret: cfg.RazorpayKeySecret,
	})
	if err != nil {
		log.Fatalf("Error initializing payment gateway: %v", err)
	}
	return gw
}

func providePaymentService(orderRepo repositories.OrderRepositoryInterface, gw gateway.Gateway) services.PaymentServiceInterface {
	return services.NewPaymentService(orderRepo, gw)
}

func providePaymentController(paymentService services.PaymentServiceInterface) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
