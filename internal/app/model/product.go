package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            uint            `gorm:"primarykey" json:"id"`
	Title         string          `gorm:"type:varchar(255);not null" json:"title"`
	Description   string          `gorm:"type:varchar(512)" json:"description"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	StockQuantity int             `gorm:"default:0" json:"stock_quantity"`
	SKU           string          `gorm:"column:sku;type:varchar(100);uniqueIndex;not null" json:"sku"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Relationships
	Categories []Category     `gorm:"many2many:product_categories;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
	Images     []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	OrderItems []OrderItem    `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"-"`
	CartItems  []CartItem     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews    []Review       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

type ProductImage struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	ProductID uint   `gorm:"not null;index" json:"product_id"`
	ImageURL  string `gorm:"type:varchar(255);not null" json:"image_url"`
	IsMain    bool   `gorm:"default:false" json:"is_main"`
}

func (ProductImage) TableName() string {
	return "product_images"
}
