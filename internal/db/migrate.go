package db

import (
	"github.com/bottic/shop-backend/internal/app/model"
	"github.com/bottic/shop-backend/pkg/logger"
	"gorm.io/gorm"
)

// Migrate runs database migrations. Migrations are strictly additive:
// existing tables and data are never dropped, only created or extended.
func Migrate() error {
	return MigrateDB(DB)
}

// MigrateDB runs migrations against a specific database handle
func MigrateDB(database *gorm.DB) error {
	logger.Info("Running database migrations...")

	// The join table must be registered before AutoMigrate so its foreign
	// keys carry ON DELETE CASCADE on both sides.
	if err := database.SetupJoinTable(&model.Product{}, "Categories", &model.ProductCategory{}); err != nil {
		logger.Error("Failed to set up product_categories join table", err)
		return err
	}
	if err := database.SetupJoinTable(&model.Category{}, "Products", &model.ProductCategory{}); err != nil {
		logger.Error("Failed to set up product_categories join table", err)
		return err
	}

	models := []interface{}{
		&model.User{},
		&model.UserProfile{},
		&model.Category{},
		&model.Product{},
		&model.ProductImage{},
		&model.Order{},
		&model.OrderItem{},
		&model.CartItem{},
		&model.Payment{},
		&model.Review{},
	}

	if err := database.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}
