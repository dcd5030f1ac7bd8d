package dto

import (
	"time"

	"github.com/bottic/shop-backend/internal/app/model"
	"github.com/shopspring/decimal"
)

type PaymentCreate struct {
	OrderID uint                `json:"order_id" binding:"required"`
	Method  model.PaymentMethod `json:"method" binding:"required,oneof=card paypal"`
}

type PaymentResponse struct {
	ID            uint                `json:"id"`
	OrderID       uint                `json:"order_id"`
	Amount        decimal.Decimal     `json:"amount"`
	Status        model.PaymentStatus `json:"status"`
	Method        model.PaymentMethod `json:"method"`
	TransactionID *string             `json:"transaction_id,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

func NewPaymentResponse(p *model.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		OrderID:       p.OrderID,
		Amount:        p.Amount,
		Status:        p.Status,
		Method:        p.Method,
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
	}
}
