package dto

import (
	"github.com/bottic/shop-backend/internal/app/model"
)

type CartItemAdd struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"omitempty,gte=1"`
}

type CartItemUpdate struct {
	Quantity int `json:"quantity" binding:"required,gte=1"`
}

type CartItemResponse struct {
	ID        uint             `json:"id"`
	UserID    uint             `json:"user_id"`
	ProductID uint             `json:"product_id"`
	Quantity  int              `json:"quantity"`
	Product   *ProductResponse `json:"product,omitempty"`
}

func NewCartItemResponse(item *model.CartItem) CartItemResponse {
	resp := CartItemResponse{
		ID:        item.ID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}
	if item.Product.ID != 0 {
		product := NewProductResponse(&item.Product)
		resp.Product = &product
	}
	return resp
}

func NewCartItemResponses(items []model.CartItem) []CartItemResponse {
	responses := make([]CartItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, NewCartItemResponse(&items[i]))
	}
	return responses
}
