package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string
type PaymentMethod string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"

	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPaypal PaymentMethod = "paypal"
)

type Payment struct {
	ID            uint            `gorm:"primarykey" json:"id"`
	OrderID       uint            `gorm:"uniqueIndex;not null" json:"order_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status        PaymentStatus   `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Method        PaymentMethod   `gorm:"type:varchar(20);not null" json:"method"`
	TransactionID *string         `gorm:"type:varchar(255);uniqueIndex" json:"transaction_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`

	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}
