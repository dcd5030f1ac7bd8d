package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bottic/shop-backend/internal/app/model"
	"github.com/bottic/shop-backend/internal/db"
)

func setupCategoryRepoTest(t *testing.T) (CategoryRepository, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	return NewCategoryRepository(testDB), testDB
}

func TestCategoryRepository_CreateAndFindAll(t *testing.T) {
	categoryRepo, _ := setupCategoryRepoTest(t)

	require.NoError(t, categoryRepo.Create(&model.Category{Name: "Books"}))
	require.NoError(t, categoryRepo.Create(&model.Category{Name: "Games"}))

	categories, err := categoryRepo.FindAll()
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}

func TestCategoryRepository_DuplicateName(t *testing.T) {
	categoryRepo, _ := setupCategoryRepoTest(t)

	require.NoError(t, categoryRepo.Create(&model.Category{Name: "Books"}))
	err := categoryRepo.Create(&model.Category{Name: "Books"})
	require.Error(t, err)
}

func TestCategoryRepository_FindByIDs_Partial(t *testing.T) {
	categoryRepo, _ := setupCategoryRepoTest(t)

	books := &model.Category{Name: "Books"}
	games := &model.Category{Name: "Games"}
	require.NoError(t, categoryRepo.Create(books))
	require.NoError(t, categoryRepo.Create(games))

	found, err := categoryRepo.FindByIDs([]uint{books.ID, games.ID, 99999})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = categoryRepo.FindByIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestCategoryRepository_ParentDeleteReRootsChildren(t *testing.T) {
	categoryRepo, testDB := setupCategoryRepoTest(t)

	parent := &model.Category{Name: "Electronics"}
	require.NoError(t, categoryRepo.Create(parent))

	child := &model.Category{Name: "Laptops", ParentCategoryID: &parent.ID}
	require.NoError(t, categoryRepo.Create(child))

	require.NoError(t, categoryRepo.Delete(parent.ID))

	var reloaded model.Category
	require.NoError(t, testDB.First(&reloaded, child.ID).Error)
	assert.Nil(t, reloaded.ParentCategoryID)
}
