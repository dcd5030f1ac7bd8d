package dto

import (
	"time"

	"github.com/bottic/shop-backend/internal/app/model"
	"github.com/shopspring/decimal"
)

type OrderResponse struct {
	ID          uint                `json:"id"`
	UserID      *uint               `json:"user_id"`
	Status      model.OrderStatus   `json:"status"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	OrderDate   time.Time           `json:"order_date"`
	Items       []OrderItemResponse `json:"items"`
	Payment     *PaymentResponse    `json:"payment,omitempty"`
}

type OrderItemResponse struct {
	ID              uint            `json:"id"`
	OrderID         uint            `json:"order_id"`
	ProductID       *uint           `json:"product_id"`
	Quantity        int             `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase"`
}

func NewOrderResponse(o *model.Order) OrderResponse {
	resp := OrderResponse{
		ID:          o.ID,
		UserID:      o.UserID,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		OrderDate:   o.OrderDate,
		Items:       make([]OrderItemResponse, 0, len(o.Items)),
	}
	for i := range o.Items {
		resp.Items = append(resp.Items, NewOrderItemResponse(&o.Items[i]))
	}
	if o.Payment != nil {
		payment := NewPaymentResponse(o.Payment)
		resp.Payment = &payment
	}
	return resp
}

func NewOrderResponses(orders []model.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, NewOrderResponse(&orders[i]))
	}
	return responses
}

func NewOrderItemResponse(item *model.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:              item.ID,
		OrderID:         item.OrderID,
		ProductID:       item.ProductID,
		Quantity:        item.Quantity,
		PriceAtPurchase: item.PriceAtPurchase,
	}
}
