package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dsev/locknlock-bff/config"
	"github.com/dsev/locknlock-bff/internal/app/controller"
	appGateway "github.com/dsev/locknlock-bff/internal/app/gateway"
	"github.com/dsev/locknlock-bff/internal/app/service"
	"github.com/dsev/locknlock-bff/internal/middleware"
	"github.com/dsev/locknlock-bff/internal/router"
	"github.com/dsev/locknlock-bff/internal/scheduler"
	"github.com/dsev/locknlock-bff/pkg/gateway"
	"github.com/dsev/locknlock-bff/pkg/logger"
	"github.com/dsev/locknlock-bff/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting LOCKNLOCK BFF Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"backend":     cfg.Gateway.BaseURL,
		"log_level":   logLevel,
	})

	// Initialize redis (optional, catalog cache degrades gracefully)
	if cfg.Redis.Enabled {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Failed to connect to redis, catalog cache disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer func() {
				if err := redis.Close(); err != nil {
					logger.Error("Failed to close redis connection", err)
				}
			}()
		}
	}

	// Initialize the backend gateway client
	client, err := gateway.NewClient(gateway.Config{
		BaseURL: cfg.Gateway.BaseURL,
		Timeout: cfg.Gateway.Timeout,
	})
	if err != nil {
		logger.Fatal("Failed to initialize gateway client", err)
	}

	// Initialize gateways
	authGateway := appGateway.NewAuthGateway(client)
	cartGateway := appGateway.NewCartGateway(client)
	catalogGateway := appGateway.NewCatalogGateway(client)
	orderGateway := appGateway.NewOrderGateway(client)
	adminGateway := appGateway.NewAdminGateway(client)

	// Initialize services
	authService := service.NewAuthService(authGateway, cfg.Session.CookieTTL)
	catalogService := service.NewCatalogService(catalogGateway, cfg.Catalog.CacheTTL)
	cartService := service.NewCartService(cartGateway, catalogService, service.CartOptions{
		OptimisticRemoval: true,
	})
	checkoutService := service.NewCheckoutService(orderGateway, cartService, service.CheckoutOptions{
		PollInterval:  cfg.Checkout.PollInterval,
		SessionTTL:    cfg.Checkout.SessionTTL,
		RedirectDelay: cfg.Checkout.RedirectDelay,
	})
	adminService := service.NewAdminService(adminGateway, catalogService)

	// Initialize controllers
	authController := controller.NewAuthController(authService, cfg.Session)
	productController := controller.NewProductController(catalogService)
	categoryController := controller.NewCategoryController(catalogService)
	tagController := controller.NewTagController(catalogService)
	cartController := controller.NewCartController(cartService)
	checkoutController := controller.NewCheckoutController(checkoutService)
	paymentController := controller.NewPaymentController(orderGateway)
	adminController := controller.NewAdminController(adminService)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(cfg.Session.CookieName)

	// Setup router
	r := router.NewRouter(
		authController,
		productController,
		categoryController,
		tagController,
		cartController,
		checkoutController,
		paymentController,
		adminController,
		sessionMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start the session janitor
	janitor := scheduler.NewSessionJanitor(checkoutService, cartService, cfg.Checkout.SessionTTL)
	if err := janitor.Start(); err != nil {
		logger.Fatal("Failed to start session janitor", err)
	}

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	janitor.Stop()
	checkoutService.Shutdown()
	logger.Info("Server stopped successfully")
}
