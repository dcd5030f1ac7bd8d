package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bottic/shop-backend/config"
	"github.com/bottic/shop-backend/internal/app/controller"
	"github.com/bottic/shop-backend/internal/app/repository"
	"github.com/bottic/shop-backend/internal/app/service"
	"github.com/bottic/shop-backend/internal/db"
	"github.com/bottic/shop-backend/internal/middleware"
	"github.com/bottic/shop-backend/internal/router"
	"github.com/bottic/shop-backend/internal/scheduler"
	"github.com/bottic/shop-backend/pkg/logger"
	"github.com/bottic/shop-backend/pkg/redis"
	"github.com/bottic/shop-backend/pkg/util"
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

	logger.Info("Starting Shop Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	util.SetBcryptCost(cfg.Security.BcryptCost)

	// Redis is optional; without it, logout token revocation is skipped
	if cfg.Redis.Enabled {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Failed to connect to redis, continuing without it", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer redis.Close()
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())
	cartRepo := repository.NewCartRepository(db.GetDB())
	paymentRepo := repository.NewPaymentRepository(db.GetDB())
	reviewRepo := repository.NewReviewRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, categoryRepo, cfg.Catalog.StrictCategoryRefs)
	categoryService := service.NewCategoryService(categoryRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	orderService := service.NewOrderService(orderRepo, cartRepo, db.GetDB())
	paymentService := service.NewPaymentService(paymentRepo, orderRepo, db.GetDB())
	reviewService := service.NewReviewService(reviewRepo, productRepo)

	// Initialize controllers
	authController := controller.NewAuthController(authService, cfg.JWT.RefreshTokenExpiry)
	userController := controller.NewUserController(userService)
	productController := controller.NewProductController(productService)
	categoryController := controller.NewCategoryController(categoryService)
	cartController := controller.NewCartController(cartService)
	orderController := controller.NewOrderController(orderService)
	paymentController := controller.NewPaymentController(paymentService)
	reviewController := controller.NewReviewController(reviewService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Background cleanup of never-paid orders
	if cfg.Orders.ExpiryJobEnabled {
		orderScheduler := scheduler.NewOrderScheduler(
			orderService,
			cfg.Orders.ExpiryCronSpec,
			cfg.Orders.PendingTTL,
		)
		if err := orderScheduler.Start(); err != nil {
			logger.Fatal("Failed to start order scheduler", err)
		}
		defer orderScheduler.Stop()
	}

	// Setup router
	r := router.NewRouter(
		authController,
		userController,
		productController,
		categoryController,
		cartController,
		orderController,
		paymentController,
		reviewController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

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
	logger.Info("Server stopped successfully")
}
