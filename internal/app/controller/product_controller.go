package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bottic/shop-backend/internal/app/dto"
	"github.com/bottic/shop-backend/internal/app/service"
	apperrors "github.com/bottic/shop-backend/internal/errors"
	"github.com/bottic/shop-backend/internal/middleware"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// GetAllProducts returns the full catalog as a bare array, each product
// with its categories embedded.
// GET /products
// GET /api/v1/products
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	products, err := ctrl.productService.ListProducts()
	if err != nil {
		log.Error("Failed to fetch products", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list products")
		return
	}

	log.Debug("Products retrieved", map[string]interface{}{
		"count": len(products),
	})

	c.JSON(http.StatusOK, dto.NewProductDetailResponses(products))
}

// GetProductByID returns one product with categories and images
// GET /api/v1/products/:id
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "invalid product id")
		return
	}

	product, err := ctrl.productService.GetProductByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "product not found")
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get product")
		return
	}

	c.JSON(http.StatusOK, dto.NewProductDetailResponse(product))
}

// CreateProduct adds a product to the catalog
// POST /addProduct
// POST /api/v1/products
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req dto.ProductCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid product create request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "invalid product input")
		return
	}

	product, err := ctrl.productService.CreateProduct(req)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			log.Warn("Product create referenced unknown categories", map[string]interface{}{
				"sku":          req.SKU,
				"category_ids": req.CategoryIDs,
			})
			apperrors.BadRequest(c, apperrors.CategoryNotFound, "one or more category ids do not exist")
			return
		}
		if apperrors.IsUniqueViolation(err) {
			log.Warn("Product create failed: duplicate sku", map[string]interface{}{
				"sku": req.SKU,
			})
			apperrors.Conflict(c, apperrors.ProductSKUExists, "a product with this sku already exists")
			return
		}
		log.Error("Failed to create product", err, map[string]interface{}{
			"sku": req.SKU,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create product")
		return
	}

	log.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
		"sku":        product.SKU,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product added successfully",
		"product": dto.NewProductDetailResponse(product),
	})
}

// UpdateProduct replaces the editable fields of a product
// PUT /api/v1/products/:id
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "invalid product id")
		return
	}

	var req dto.ProductUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid product update request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "invalid product input")
		return
	}

	product, err := ctrl.productService.UpdateProduct(uint(id), req)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "product not found")
			return
		}
		log.Error("Failed to update product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update product")
		return
	}

	log.Info("Product updated", map[string]interface{}{
		"product_id": product.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": dto.NewProductDetailResponse(product),
	})
}

// DeleteProductBySKU deletes a product addressed by its sku. The response
// distinguishes a deleted product from one that was never there.
// DELETE /deleteProduct?sku=ABC-123
// DELETE /api/v1/products?sku=ABC-123
func (ctrl *ProductController) DeleteProductBySKU(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sku := c.Query("sku")
	if sku == "" {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "sku query parameter is required")
		return
	}

	deleted, err := ctrl.productService.DeleteProductBySKU(sku)
	if err != nil {
		log.Error("Failed to delete product", err, map[string]interface{}{
			"sku": sku,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete product")
		return
	}

	if !deleted {
		log.Warn("Product to delete not found", map[string]interface{}{
			"sku": sku,
		})
		apperrors.NotFound(c, apperrors.ProductNotFound, "product not found")
		return
	}

	log.Info("Product deleted", map[string]interface{}{
		"sku": sku,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
		"sku":     sku,
	})
}
