package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bottic/shop-backend/internal/app/model"
	"github.com/bottic/shop-backend/internal/db"
)

func setupCartRepoTest(t *testing.T) (CartRepository, *gorm.DB, *model.User, *model.Product) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	user := &model.User{
		Email:        "cart@example.com",
		PasswordHash: "hashed-password",
		Role:         model.RoleUser,
	}
	require.NoError(t, testDB.Create(user).Error)

	product := &model.Product{
		Title:         "USB Hub",
		Price:         decimal.NewFromInt(30),
		StockQuantity: 50,
		SKU:           "HUB-001",
	}
	require.NoError(t, testDB.Create(product).Error)

	return NewCartRepository(testDB), testDB, user, product
}

func TestCartRepository_CreateAndFindByUser(t *testing.T) {
	cartRepo, _, user, product := setupCartRepoTest(t)

	require.NoError(t, cartRepo.Create(&model.CartItem{
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  2,
	}))

	items, err := cartRepo.FindByUserID(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	// Product is eagerly loaded for price lookups
	assert.Equal(t, "USB Hub", items[0].Product.Title)
}

func TestCartRepository_FindByUserAndProduct(t *testing.T) {
	cartRepo, _, user, product := setupCartRepoTest(t)

	_, err := cartRepo.FindByUserAndProduct(user.ID, product.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, cartRepo.Create(&model.CartItem{
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  1,
	}))

	item, err := cartRepo.FindByUserAndProduct(user.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestCartRepository_UpdateQuantity(t *testing.T) {
	cartRepo, _, user, product := setupCartRepoTest(t)

	item := &model.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 1}
	require.NoError(t, cartRepo.Create(item))

	require.NoError(t, cartRepo.UpdateQuantity(item.ID, 5))

	reloaded, err := cartRepo.FindByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, reloaded.Quantity)
}

func TestCartRepository_DeleteByUserID(t *testing.T) {
	cartRepo, testDB, user, product := setupCartRepoTest(t)

	other := &model.Product{
		Title: "Cable",
		Price: decimal.NewFromInt(5),
		SKU:   "CBL-001",
	}
	require.NoError(t, testDB.Create(other).Error)

	require.NoError(t, cartRepo.Create(&model.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 1}))
	require.NoError(t, cartRepo.Create(&model.CartItem{UserID: user.ID, ProductID: other.ID, Quantity: 3}))

	require.NoError(t, cartRepo.DeleteByUserID(user.ID))

	items, err := cartRepo.FindByUserID(user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartRepository_UserDeleteCascades(t *testing.T) {
	cartRepo, testDB, user, product := setupCartRepoTest(t)

	require.NoError(t, cartRepo.Create(&model.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 1}))

	require.NoError(t, testDB.Delete(&model.User{}, user.ID).Error)

	var count int64
	require.NoError(t, testDB.Model(&model.CartItem{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
}
