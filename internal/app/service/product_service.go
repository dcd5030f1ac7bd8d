package service

import (
	"errors"

	"github.com/bottic/shop-backend/internal/app/dto"
	"github.com/bottic/shop-backend/internal/app/model"
	"github.com/bottic/shop-backend/internal/app/repository"
	"github.com/bottic/shop-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

type ProductService interface {
	ListProducts() ([]model.Product, error)
	GetProductByID(id uint) (*model.Product, error)
	CreateProduct(req dto.ProductCreate) (*model.Product, error)
	UpdateProduct(id uint, req dto.ProductUpdate) (*model.Product, error)
	DeleteProductBySKU(sku string) (bool, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	// strictCategoryRefs controls how unknown category ids in a create
	// request are handled: reject the request, or drop them silently.
	strictCategoryRefs bool
}

func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	strictCategoryRefs bool,
) ProductService {
	return &productService{
		productRepo:        productRepo,
		categoryRepo:       categoryRepo,
		strictCategoryRefs: strictCategoryRefs,
	}
}

func (s *productService) ListProducts() ([]model.Product, error) {
	logger.Debug("Listing products", nil)

	products, err := s.productRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list products", err)
		return nil, err
	}

	logger.Info("Products listed", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

func (s *productService) GetProductByID(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Product not found", map[string]interface{}{
				"product_id": id,
			})
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}
	return product, nil
}

func (s *productService) CreateProduct(req dto.ProductCreate) (*model.Product, error) {
	logger.Debug("Creating product", map[string]interface{}{
		"title":        req.Title,
		"sku":          req.SKU,
		"category_ids": req.CategoryIDs,
	})

	categories, err := s.resolveCategories(req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		SKU:           req.SKU,
		Categories:    categories,
	}

	if err := s.productRepo.Create(product); err != nil {
		logger.Error("Failed to create product", err, map[string]interface{}{
			"sku": req.SKU,
		})
		return nil, err
	}

	logger.Info("Product created", map[string]interface{}{
		"product_id":     product.ID,
		"sku":            product.SKU,
		"category_count": len(product.Categories),
	})
	return product, nil
}

// resolveCategories turns category ids into rows. Under the strict policy
// any id without a matching row fails the whole request; under the lenient
// policy unknown ids are dropped and the rest attached.
func (s *productService) resolveCategories(ids []uint) ([]model.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	categories, err := s.categoryRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	if s.strictCategoryRefs && len(categories) != len(ids) {
		missing := missingIDs(ids, categories)
		logger.Warn("Product create references unknown categories", map[string]interface{}{
			"missing_ids": missing,
		})
		return nil, ErrCategoryNotFound
	}

	if len(categories) != len(ids) {
		logger.Debug("Dropping unknown category ids", map[string]interface{}{
			"requested": len(ids),
			"resolved":  len(categories),
		})
	}
	return categories, nil
}

func missingIDs(ids []uint, found []model.Category) []uint {
	present := make(map[uint]bool, len(found))
	for _, category := range found {
		present[category.ID] = true
	}

	var missing []uint
	for _, id := range ids {
		if !present[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

func (s *productService) UpdateProduct(id uint, req dto.ProductUpdate) (*model.Product, error) {
	product, err := s.GetProductByID(id)
	if err != nil {
		return nil, err
	}

	product.Title = req.Title
	product.Description = req.Description
	product.Price = req.Price
	product.StockQuantity = req.StockQuantity

	if err := s.productRepo.Update(product); err != nil {
		logger.Error("Failed to update product", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}

	logger.Info("Product updated", map[string]interface{}{
		"product_id": product.ID,
	})
	return product, nil
}

// DeleteProductBySKU deletes the product carrying the given sku and reports
// whether one existed. A concurrent delete of the same sku is resolved by
// the store: one caller wins, the other observes not-found.
func (s *productService) DeleteProductBySKU(sku string) (bool, error) {
	product, err := s.productRepo.FindBySKU(sku)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Delete requested for unknown sku", map[string]interface{}{
				"sku": sku,
			})
			return false, nil
		}
		logger.Error("Failed to look up product by sku", err, map[string]interface{}{
			"sku": sku,
		})
		return false, err
	}

	if err := s.productRepo.Delete(product.ID); err != nil {
		return false, err
	}

	logger.Info("Product deleted", map[string]interface{}{
		"product_id": product.ID,
		"sku":        sku,
	})
	return true, nil
}
