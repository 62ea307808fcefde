package main

import (
	"context"
	"log"

	"refurbmart/cmd/fx/account_fx"
	"refurbmart/cmd/fx/catalogfx"
	"refurbmart/cmd/fx/dbfx"
	"refurbmart/cmd/fx/inventoryfx"
	"refurbmart/cmd/fx/orderfx"
	"refurbmart/cmd/fx/payment_fx"
	"refurbmart/cmd/fx/settingsfx"
	"refurbmart/cmd/fx/transactionfx"
	"refurbmart/internal/api/controllers"
	"refurbmart/internal/models/db_models"
	"refurbmart/pkg/config"
	"refurbmart/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		fx.Provide(config.Load),
		dbfx.Module,
		account_fx.Module,
		catalogfx.Module,
		inventoryfx.Module,
		settingsfx.Module,
		orderfx.Module,
		payment_fx.Module,
		transactionfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	orderController *controllers.OrderController,
	paymentController *controllers.PaymentController,
	inventoryController *controllers.InventoryController,
	transactionController *controllers.TransactionController,
	settingsController *controllers.SettingsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController, catalogController, orderController,
		paymentController, inventoryController, transactionController,
		settingsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	orderController *controllers.OrderController,
	paymentController *controllers.PaymentController,
	inventoryController *controllers.InventoryController,
	transactionController *controllers.TransactionController,
	settingsController *controllers.SettingsController) {

	staffOnly := middleware.RequireRoles(db_models.RoleAdmin, db_models.RoleSuperAdmin)

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	catalog := r.Group("/catalog")
	catalog.GET("/products", catalogController.ListProducts)
	catalog.GET("/products/:id", catalogController.GetProduct)
	catalog.GET("/categories", catalogController.ListCategories)
	catalog.GET("/masters", catalogController.ListMasters)
	catalog.GET("/submasters", catalogController.ListSubMasters)

	orders := r.Group("/orders", middleware.JWTAuthMiddleware())
	orders.POST("", orderController.CreateOrder)
	orders.GET("", orderController.ListMyOrders)
	orders.GET("/:id", orderController.GetOrder)
	orders.POST("/:id/return", orderController.RequestReturn)
	orders.PUT("/:id/status", staffOnly, orderController.UpdateStatus)

	payments := r.Group("/payments", middleware.JWTAuthMiddleware())
	payments.POST("/verify", paymentController.VerifyPayment)

	admin := r.Group("/admin", middleware.JWTAuthMiddleware(), staffOnly)
	admin.GET("/accounts", accountController.GetAllAccounts)
	admin.GET("/orders", orderController.ListAllOrders)
	admin.GET("/transactions", transactionController.ListTransactions)
	admin.PUT("/inventory/:variantId", inventoryController.AdjustStock)
	admin.GET("/settings", settingsController.GetSettings)
	admin.PUT("/settings", settingsController.UpdateSettings)

	admin.POST("/categories", catalogController.CreateCategory)
	admin.PUT("/categories/:id", catalogController.UpdateCategory)
	admin.DELETE("/categories/:id", catalogController.DeleteCategory)
	admin.POST("/masters", catalogController.CreateMaster)
	admin.DELETE("/masters/:id", catalogController.DeleteMaster)
	admin.POST("/submasters", catalogController.CreateSubMaster)
	admin.DELETE("/submasters/:id", catalogController.DeleteSubMaster)
	admin.POST("/products", catalogController.CreateProduct)
	admin.PUT("/products/:id", catalogController.UpdateProduct)
	admin.DELETE("/products/:id", catalogController.DeleteProduct)
	admin.POST("/products/:id/variants", catalogController.AddVariant)
}
