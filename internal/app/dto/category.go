package dto

import (
	"github.com/bottic/shop-backend/internal/app/model"
)

type CategoryCreate struct {
	Name             string `json:"name" binding:"required"`
	ParentCategoryID *uint  `json:"parent_category_id"`
}

type CategoryResponse struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	ParentCategoryID *uint  `json:"parent_category_id,omitempty"`
}

func NewCategoryResponse(c *model.Category) CategoryResponse {
	return CategoryResponse{
		ID:               c.ID,
		Name:             c.Name,
		ParentCategoryID: c.ParentCategoryID,
	}
}

func NewCategoryResponses(categories []model.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, NewCategoryResponse(&categories[i]))
	}
	return responses
}
