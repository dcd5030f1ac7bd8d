package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bottic/shop-backend/internal/app/dto"
	"github.com/bottic/shop-backend/internal/app/model"
	"github.com/bottic/shop-backend/internal/app/repository"
	"github.com/bottic/shop-backend/internal/db"
)

func setupProductServiceTest(t *testing.T, strictCategoryRefs bool) (ProductService, repository.CategoryRepository, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	productRepo := repository.NewProductRepository(testDB)
	categoryRepo := repository.NewCategoryRepository(testDB)
	return NewProductService(productRepo, categoryRepo, strictCategoryRefs), categoryRepo, testDB
}

func TestProductService_CreateProduct(t *testing.T) {
	svc, categoryRepo, _ := setupProductServiceTest(t, true)

	category := &model.Category{Name: "Kitchen"}
	require.NoError(t, categoryRepo.Create(category))

	product, err := svc.CreateProduct(dto.ProductCreate{
		Title:         "French Press",
		Description:   "1L borosilicate glass",
		Price:         decimal.NewFromFloat(24.99),
		StockQuantity: 40,
		SKU:           "FP-001",
		CategoryIDs:   []uint{category.ID},
	})
	require.NoError(t, err)
	assert.NotZero(t, product.ID)
	require.Len(t, product.Categories, 1)
	assert.Equal(t, "Kitchen", product.Categories[0].Name)
}

func TestProductService_CreateProduct_StrictRejectsUnknownCategories(t *testing.T) {
	svc, categoryRepo, testDB := setupProductServiceTest(t, true)

	category := &model.Category{Name: "Kitchen"}
	require.NoError(t, categoryRepo.Create(category))

	_, err := svc.CreateProduct(dto.ProductCreate{
		Title:       "Kettle",
		Price:       decimal.NewFromInt(35),
		SKU:         "KT-001",
		CategoryIDs: []uint{category.ID, 99999},
	})
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	// Nothing was written
	var count int64
	require.NoError(t, testDB.Model(&model.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestProductService_CreateProduct_LenientDropsUnknownCategories(t *testing.T) {
	svc, categoryRepo, _ := setupProductServiceTest(t, false)

	category := &model.Category{Name: "Kitchen"}
	require.NoError(t, categoryRepo.Create(category))

	product, err := svc.CreateProduct(dto.ProductCreate{
		Title:       "Kettle",
		Price:       decimal.NewFromInt(35),
		SKU:         "KT-001",
		CategoryIDs: []uint{category.ID, 99999},
	})
	require.NoError(t, err)
	require.Len(t, product.Categories, 1)
	assert.Equal(t, category.ID, product.Categories[0].ID)
}

func TestProductService_GetProductByID_NotFound(t *testing.T) {
	svc, _, _ := setupProductServiceTest(t, true)

	_, err := svc.GetProductByID(12345)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_UpdateProduct(t *testing.T) {
	svc, _, _ := setupProductServiceTest(t, true)

	product, err := svc.CreateProduct(dto.ProductCreate{
		Title: "Toaster",
		Price: decimal.NewFromInt(20),
		SKU:   "TS-001",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(product.ID, dto.ProductUpdate{
		Title:         "Toaster Deluxe",
		Description:   "Four slots",
		Price:         decimal.NewFromInt(32),
		StockQuantity: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, "Toaster Deluxe", updated.Title)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(32)))
	assert.Equal(t, 8, updated.StockQuantity)

	_, err = svc.UpdateProduct(99999, dto.ProductUpdate{Title: "Ghost"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_DeleteProductBySKU(t *testing.T) {
	svc, _, _ := setupProductServiceTest(t, true)

	_, err := svc.CreateProduct(dto.ProductCreate{
		Title: "Blender",
		Price: decimal.NewFromInt(55),
		SKU:   "BL-001",
	})
	require.NoError(t, err)

	deleted, err := svc.DeleteProductBySKU("BL-001")
	require.NoError(t, err)
	assert.True(t, deleted)

	// Second delete of the same sku is a clean not-found, not an error
	deleted, err = svc.DeleteProductBySKU("BL-001")
	require.NoError(t, err)
	assert.False(t, deleted)
}
