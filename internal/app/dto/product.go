// Package dto defines the shapes that cross the HTTP boundary. Create
// structs carry the fields a client may supply; response structs carry
// those plus generated identity and timestamps. Related entities are
// exposed as ids by default and expanded only where an endpoint needs it,
// so response types never reference each other mutually.
package dto

import (
	"time"

	"github.com/bottic/shop-backend/internal/app/model"
	"github.com/shopspring/decimal"
)

type ProductCreate struct {
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity" binding:"gte=0"`
	SKU           string          `json:"sku" binding:"required"`
	CategoryIDs   []uint          `json:"category_ids"`
}

type ProductUpdate struct {
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity" binding:"gte=0"`
}

type ProductResponse struct {
	ID            uint            `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	SKU           string          `json:"sku"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductDetailResponse expands the relations the catalog endpoints serve:
// categories and images. Order/cart/review links stay id-only.
type ProductDetailResponse struct {
	ProductResponse
	Categories []CategoryResponse     `json:"categories"`
	Images     []ProductImageResponse `json:"images,omitempty"`
}

type ProductImageResponse struct {
	ID        uint   `json:"id"`
	ProductID uint   `json:"product_id"`
	ImageURL  string `json:"image_url"`
	IsMain    bool   `json:"is_main"`
}

func NewProductResponse(p *model.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		SKU:           p.SKU,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func NewProductDetailResponse(p *model.Product) ProductDetailResponse {
	detail := ProductDetailResponse{
		ProductResponse: NewProductResponse(p),
		Categories:      make([]CategoryResponse, 0, len(p.Categories)),
	}
	for i := range p.Categories {
		detail.Categories = append(detail.Categories, NewCategoryResponse(&p.Categories[i]))
	}
	for i := range p.Images {
		detail.Images = append(detail.Images, NewProductImageResponse(&p.Images[i]))
	}
	return detail
}

func NewProductDetailResponses(products []model.Product) []ProductDetailResponse {
	responses := make([]ProductDetailResponse, 0, len(products))
	for i := range products {
		responses = append(responses, NewProductDetailResponse(&products[i]))
	}
	return responses
}

func NewProductImageResponse(img *model.ProductImage) ProductImageResponse {
	return ProductImageResponse{
		ID:        img.ID,
		ProductID: img.ProductID,
		ImageURL:  img.ImageURL,
		IsMain:    img.IsMain,
	}
}
